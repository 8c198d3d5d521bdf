package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// insertClient returns an insert-only river client. Inside a transaction it
// has no pool and must be used through the *Tx insert methods.
func (p *PgSQL) insertClient() (*river.Client[*sql.Tx], *sql.Tx, error) {
	if tx, ok := p.DB.(*sql.Tx); ok {
		client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create river queue client: %w", err)
		}

		return client, tx, nil
	}

	client, err := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{}) //nolint: forcetypeassert
	if err != nil {
		return nil, nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil, nil
}

// AddJob inserts one job, inside the current transaction when there is one.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	client, tx, err := p.insertClient()
	if err != nil {
		return false, err
	}

	var res *rivertype.JobInsertResult
	if tx != nil {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

// AddJobs inserts a batch of jobs in one round trip and returns how many were
// inserted, skipped unique duplicates excluded.
func (p *PgSQL) AddJobs(ctx context.Context, params []river.InsertManyParams) (int, error) {
	if len(params) == 0 {
		return 0, nil
	}

	client, tx, err := p.insertClient()
	if err != nil {
		return 0, err
	}

	var res []*rivertype.JobInsertResult
	if tx != nil {
		res, err = client.InsertManyTx(ctx, tx, params)
	} else {
		res, err = client.InsertMany(ctx, params)
	}
	if err != nil {
		return 0, fmt.Errorf("could not insert jobs: %w", err)
	}

	inserted := 0
	for _, r := range res {
		if !r.UniqueSkippedAsDuplicate {
			inserted++
		}
	}

	return inserted, nil
}
