package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathcoach/ent"
	entattempt "github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
	"github.com/abhisek/mathcoach/internal/grading"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Save(ctx context.Context, a Attempt, answers []AttemptAnswer) (*Attempt, error) {
	var saved *ent.Attempt
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		c := tx.Attempt.Create().
			SetTaskID(a.TaskID).
			SetStudentID(a.StudentID).
			SetStartedAt(a.StartedAt).
			SetCompletedAt(a.CompletedAt).
			SetTimeTaken(a.TimeTaken).
			SetScore(a.Score).
			SetGrade(entattempt.Grade(a.Grade))
		if a.Mode != "" {
			c.SetMode(entattempt.Mode(a.Mode))
		}
		var err error
		saved, err = c.Save(ctx)
		if err != nil {
			return fmt.Errorf("save attempt: %w", err)
		}

		if len(answers) == 0 {
			return nil
		}
		builders := make([]*ent.AttemptAnswerCreate, len(answers))
		for i, ans := range answers {
			builders[i] = tx.AttemptAnswer.Create().
				SetAttemptID(saved.ID).
				SetQuestionIndex(ans.QuestionIndex).
				SetNillableUserAnswer(ans.UserAnswer).
				SetIsCorrect(ans.IsCorrect)
		}
		if _, err := tx.AttemptAnswer.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("save attempt answers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entAttemptToAttempt(saved), nil
}

func (r *attemptRepo) ForStudent(ctx context.Context, studentID, taskID string) ([]Attempt, error) {
	q := r.client.Attempt.Query().
		Where(entattempt.StudentIDEQ(studentID), entattempt.CompletedAtNotNil())
	if taskID != "" {
		q = q.Where(entattempt.TaskIDEQ(taskID))
	}
	rows, err := q.Order(ent.Asc(entattempt.FieldStartedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]Attempt, len(rows))
	for i, e := range rows {
		out[i] = *entAttemptToAttempt(e)
	}
	return out, nil
}

func (r *attemptRepo) Answers(ctx context.Context, attemptID string) ([]AttemptAnswer, error) {
	rows, err := r.client.AttemptAnswer.Query().
		Where(attemptanswer.AttemptIDEQ(attemptID)).
		Order(ent.Asc(attemptanswer.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt answers: %w", err)
	}
	out := make([]AttemptAnswer, len(rows))
	for i, e := range rows {
		out[i] = AttemptAnswer{
			QuestionIndex: e.QuestionIndex,
			UserAnswer:    e.UserAnswer,
			IsCorrect:     e.IsCorrect,
		}
	}
	return out, nil
}

func entAttemptToAttempt(e *ent.Attempt) *Attempt {
	a := &Attempt{
		ID:        e.ID,
		TaskID:    e.TaskID,
		StudentID: e.StudentID,
		Mode:      string(e.Mode),
		StartedAt: e.StartedAt,
		TimeTaken: e.TimeTaken,
		Score:     e.Score,
		Grade:     grading.Tier(e.Grade),
	}
	if e.CompletedAt != nil {
		a.CompletedAt = *e.CompletedAt
	}
	return a
}
