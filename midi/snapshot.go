package midi

import (
	"sort"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func reduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier first, note offs before note ons at the same time
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

func heldNotes(pressed map[uint8]bool) model.Notes {
	notes := util.GetKeys(pressed)
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return notes
}

// Snapshots replays the note events of every track and returns the keys
// held after each distinct moment, in time order. Moments where nothing
// is held are skipped.
func Snapshots(s *smf.SMF) []model.Snapshot {
	timestampToNotes := make(map[int64]model.Notes)
	pressed := make(map[uint8]bool)
	for _, evt := range reduceEvents(s) {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		timestampToNotes[evt.Offset] = heldNotes(pressed)
	}

	offsets := util.GetKeys(timestampToNotes)
	sort.Slice(offsets, func(i, j int) bool {
		return offsets[i] < offsets[j]
	})

	var res []model.Snapshot
	for _, offset := range offsets {
		notes := timestampToNotes[offset]
		if len(notes) > 0 {
			res = append(res, model.Snapshot{Offset: offset, Notes: notes})
		}
	}
	return res
}
