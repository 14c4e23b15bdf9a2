package repository

import (
	"context"
	"fmt"

	"github.com/libris-works/library-service/internal/model"
)

func (r *repository) GetStats(ctx context.Context) ([]model.ActivityStats, error) {
	query, _, err := qb.Select("username", "cnt_reserved", "cnt_returned", "cnt_overdue", "last_updated").
		From(statsTableName).
		OrderBy("last_updated desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ActivityStats
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// eventDelta maps an event onto the counter column it bumps and by how much.
// overdue_processed events carry the number of reservations the run touched.
func eventDelta(ev model.ReservationEvent) (string, int, error) {
	switch ev.Type {
	case model.EventReserved:
		return "cnt_reserved", 1, nil
	case model.EventReturned:
		return "cnt_returned", 1, nil
	case model.EventOverdueProcessed:
		return "cnt_overdue", ev.Overdue, nil
	default:
		return "", 0, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// ApplyEvent folds one reservation event into the per-user counters.
func (r *repository) ApplyEvent(ctx context.Context, ev model.ReservationEvent) error {
	column, delta, err := eventDelta(ev)
	if err != nil {
		return err
	}
	if delta == 0 {
		return nil
	}

	q := fmt.Sprintf(`
	insert into %s (username, %s, last_updated)
	values ($1, $2, now())
	on conflict (username) do update
	set %s = %s.%s + $2, last_updated = now()`,
		statsTableName, column, column, statsTableName, column)

	_, err = r.db.ExecContext(ctx, q, ev.Username, delta)
	return err
}
