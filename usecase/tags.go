package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"notable/model"
)

type TagService struct {
	Tags TagStore
}

func NewTagService(tags TagStore) *TagService {
	return &TagService{Tags: tags}
}

func (s *TagService) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return s.Tags.ListTags(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.Tags.FindTagByID(ctx, objectID)
}

func (s *TagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	tag := &model.Tag{Name: strings.TrimSpace(name)}
	if err := ValidateTag(tag); err != nil {
		return nil, err
	}
	if err := s.Tags.InsertTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id, name string) (*model.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil || tag == nil {
		return nil, err
	}

	tag.Name = strings.TrimSpace(name)
	if err := ValidateTag(tag); err != nil {
		return nil, err
	}
	if err := s.Tags.UpdateTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes the tag and nothing else; notes still holding its id
// keep the dangling reference, which populate drops on read.
func (s *TagService) DeleteTag(ctx context.Context, id string) (*model.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil || tag == nil {
		return nil, err
	}
	if _, err := s.Tags.DeleteTag(ctx, tag.ID); err != nil {
		return nil, err
	}
	return tag, nil
}
