package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvent_Command(t *testing.T) {
	tests := []struct {
		Event    Event
		Expected Command
	}{
		{Event{Key: KeyArrowUp}, CommandUp},
		{Event{Key: KeyArrowDown}, CommandDown},
		{Event{Key: KeyArrowLeft}, CommandLeft},
		{Event{Key: KeyArrowRight}, CommandRight},
		{Event{Key: KeyEsc}, CommandQuit},
		{Event{Key: KeyCtrlC}, CommandQuit},
		{Event{Ch: 'w'}, CommandUp},
		{Event{Ch: 'S'}, CommandDown},
		{Event{Ch: 'h'}, CommandLeft},
		{Event{Ch: 'd'}, CommandRight},
		{Event{Ch: 'q'}, CommandQuit},
		{Event{Ch: 'Q'}, CommandQuit},
		{Event{Ch: 'x'}, CommandNone},
		{Event{}, CommandNone},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, test.Event.Command(), "Event: %+v", test.Event)
	}
}

func TestFromTermbox(t *testing.T) {
	require.Equal(t, Event{Ch: 'a'}, fromTermbox(termboxKey(0, 'a')))
	require.Equal(t, Event{Key: KeyArrowLeft}, fromTermbox(termboxKey(keyArrowLeft, 0)))
	require.Equal(t, Event{Key: KeyCtrlC}, fromTermbox(termboxKey(keyCtrlC, 0)))
	require.Equal(t, Event{Ch: ' '}, fromTermbox(termboxKey(keySpace, 0)))
}
