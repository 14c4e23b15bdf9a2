package repository

import (
	"testing"

	"github.com/libris-works/library-service/internal/model"
	"github.com/stretchr/testify/require"
)

func Test_eventDelta(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name       string
		ev         model.ReservationEvent
		wantColumn string
		wantDelta  int
		wantErr    bool
	}{
		{
			name:       "reserved bumps by one",
			ev:         model.ReservationEvent{Type: model.EventReserved, Username: "maria"},
			wantColumn: "cnt_reserved",
			wantDelta:  1,
		},
		{
			name:       "returned bumps by one",
			ev:         model.ReservationEvent{Type: model.EventReturned, Username: "maria"},
			wantColumn: "cnt_returned",
			wantDelta:  1,
		},
		{
			name:       "overdue run carries its processed count",
			ev:         model.ReservationEvent{Type: model.EventOverdueProcessed, Username: "irina", Overdue: 3},
			wantColumn: "cnt_overdue",
			wantDelta:  3,
		},
		{
			name:       "overdue run that touched nothing is a no-op",
			ev:         model.ReservationEvent{Type: model.EventOverdueProcessed, Username: "irina"},
			wantColumn: "cnt_overdue",
			wantDelta:  0,
		},
		{
			name:    "err. unknown type",
			ev:      model.ReservationEvent{Type: "renamed", Username: "maria"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			column, delta, err := eventDelta(tt.ev)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantColumn, column)
			require.Equal(t, tt.wantDelta, delta)
		})
	}
}
