package echomind

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type ClassroomOverview struct {
	Classroom   *Classroom
	Evaluations *EvaluationSummary
}

// LoadClassroomOverview: classroom + evaluations paralel; gagal salah satu = gagal semua.
func LoadClassroomOverview(ctx context.Context, c *Client, classroomID uint) (*ClassroomOverview, error) {
	if classroomID == 0 {
		return nil, ErrMissingParam
	}

	var out ClassroomOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cls, err := c.GetClassroom(gctx, classroomID)
		out.Classroom = cls
		return err
	})
	g.Go(func() error {
		ev, err := c.ClassroomEvaluations(gctx, classroomID)
		out.Evaluations = ev
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
