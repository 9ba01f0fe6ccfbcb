package todo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"todoapi/internal/apperr"
)

// ErrNoRowsAffected means the row vanished between the ownership check and
// the write.
var ErrNoRowsAffected = errors.New("no rows affected")

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Title     string
	Completed bool
}

// UpdateInput fields are nil when absent from the request.
type UpdateInput struct {
	Title     *string
	Completed *bool
}

func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Todo{}, apperr.Validation("Please provide a todo title.")
	}

	t := Todo{Title: title, Completed: in.Completed, UserID: userID}
	if err := s.DB.WithContext(ctx).Create(&t).Error; err != nil {
		return Todo{}, apperr.Store("Error creating todo.", err)
	}
	return t, nil
}

// List returns the caller's todos, newest first. No rows is an empty slice.
func (s *Service) List(ctx context.Context, userID uint64) ([]Todo, error) {
	out := []Todo{}
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").
		Find(&out).Error; err != nil {
		return nil, apperr.Store("Error retrieving todos.", err)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, userID, id uint64, in UpdateInput) (Todo, error) {
	db := s.DB.WithContext(ctx)

	t, err := s.owned(db, userID, id, "You are not authorized to update this todo.", "Error updating todo.")
	if err != nil {
		return Todo{}, err
	}

	patch := map[string]any{}
	if in.Title != nil {
		if title := strings.TrimSpace(*in.Title); title != "" {
			patch["title"] = title
			t.Title = title
		}
	}
	if in.Completed != nil {
		patch["completed"] = *in.Completed
		t.Completed = *in.Completed
	}
	if len(patch) == 0 {
		return Todo{}, apperr.Validation("Please provide title or completed status to update.")
	}

	res := db.Model(&Todo{}).Where("id = ? AND user_id = ?", id, userID).Updates(patch)
	if res.Error != nil {
		return Todo{}, apperr.Store("Error updating todo.", res.Error)
	}
	if res.RowsAffected == 0 {
		return Todo{}, apperr.Store("Error updating todo.", ErrNoRowsAffected)
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uint64) error {
	db := s.DB.WithContext(ctx)

	if _, err := s.owned(db, userID, id, "You are not authorized to delete this todo.", "Error deleting todo."); err != nil {
		return err
	}

	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&Todo{})
	if res.Error != nil {
		return apperr.Store("Error deleting todo.", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Store("Error deleting todo.", ErrNoRowsAffected)
	}
	return nil
}

// owned loads the todo by id alone so that a missing row (404) and someone
// else's row (403) stay distinguishable.
func (s *Service) owned(db *gorm.DB, userID, id uint64, forbidden, storeMsg string) (Todo, error) {
	var t Todo
	if err := db.Where("id = ?", id).Take(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Todo{}, apperr.NotFound("Todo not found.")
		}
		return Todo{}, apperr.Store(storeMsg, err)
	}
	if t.UserID != userID {
		return Todo{}, apperr.Forbidden(forbidden)
	}
	return t, nil
}
