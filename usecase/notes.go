package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"notable/model"
)

// ErrNotOwner reports a write against a note the caller does not own.
var ErrNotOwner = errors.New("note belongs to another user")

type NoteService struct {
	Notes NoteStore
	Tags  TagStore
}

func NewNoteService(notes NoteStore, tags TagStore) *NoteService {
	return &NoteService{Notes: notes, Tags: tags}
}

// NoteUpdate carries a partial update. Nil fields are left unchanged;
// a non-nil Tags replaces the tag set wholesale, empty slice included.
type NoteUpdate struct {
	Text *string
	Tags *[]string
}

// ListNotes returns populated notes, most recently updated first,
// optionally restricted to one owner.
func (s *NoteService) ListNotes(ctx context.Context, ownerID string) ([]*model.PopulatedNote, error) {
	var owner *primitive.ObjectID
	if ownerID != "" {
		id, err := primitive.ObjectIDFromHex(ownerID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %s", ownerID)
		}
		owner = &id
	}

	notes, err := s.Notes.ListNotes(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, notes)
}

// GetNote returns the populated note, or nil when the id is unknown or
// does not parse.
func (s *NoteService) GetNote(ctx context.Context, id string) (*model.PopulatedNote, error) {
	note, err := s.findNote(ctx, id)
	if err != nil || note == nil {
		return nil, err
	}
	return s.populate(ctx, note)
}

// CreateNote saves a note owned by the caller, then reloads it with its
// tags resolved. The save and the reload are two independent round
// trips; there is no atomicity between them.
func (s *NoteService) CreateNote(ctx context.Context, owner primitive.ObjectID, text string, tagIDs []string) (*model.PopulatedNote, error) {
	note := &model.Note{
		Text: text,
		User: owner,
		Tags: parseTagIDs(tagIDs),
	}
	if err := ValidateNote(note); err != nil {
		return nil, err
	}

	if err := s.Notes.InsertNote(ctx, note); err != nil {
		return nil, err
	}

	saved, err := s.Notes.FindNoteByID(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, saved)
}

// UpdateNote applies a partial update to a note the caller owns and
// returns the populated result. Nil when the note does not exist.
func (s *NoteService) UpdateNote(ctx context.Context, owner primitive.ObjectID, id string, update NoteUpdate) (*model.PopulatedNote, error) {
	note, err := s.findNote(ctx, id)
	if err != nil || note == nil {
		return nil, err
	}
	if note.User != owner {
		return nil, ErrNotOwner
	}

	if update.Text != nil {
		note.Text = *update.Text
	}
	if update.Tags != nil {
		note.Tags = parseTagIDs(*update.Tags)
	}

	if err := ValidateNote(note); err != nil {
		return nil, err
	}

	if err := s.Notes.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	saved, err := s.Notes.FindNoteByID(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, saved)
}

// DeleteNote removes a note the caller owns and returns it as it was,
// populated. Nil when the note does not exist.
func (s *NoteService) DeleteNote(ctx context.Context, owner primitive.ObjectID, id string) (*model.PopulatedNote, error) {
	note, err := s.findNote(ctx, id)
	if err != nil || note == nil {
		return nil, err
	}
	if note.User != owner {
		return nil, ErrNotOwner
	}

	populated, err := s.populate(ctx, note)
	if err != nil {
		return nil, err
	}

	if _, err := s.Notes.DeleteNote(ctx, note.ID); err != nil {
		return nil, err
	}
	return populated, nil
}

// NoteTags returns the resolved tags of one note, in stored order.
func (s *NoteService) NoteTags(ctx context.Context, id string) ([]model.Tag, error) {
	note, err := s.findNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return s.Tags.FindTagsByIDs(ctx, note.Tags)
}

// findNote treats an unparseable id the same as an unknown one.
func (s *NoteService) findNote(ctx context.Context, id string) (*model.Note, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.Notes.FindNoteByID(ctx, objectID)
}

func (s *NoteService) populate(ctx context.Context, note *model.Note) (*model.PopulatedNote, error) {
	tags, err := s.Tags.FindTagsByIDs(ctx, note.Tags)
	if err != nil {
		return nil, err
	}
	return &model.PopulatedNote{
		ID:        note.ID,
		Text:      note.Text,
		User:      note.User,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

// populateAll resolves the tags of every note with a single lookup.
func (s *NoteService) populateAll(ctx context.Context, notes []*model.Note) ([]*model.PopulatedNote, error) {
	seen := map[primitive.ObjectID]bool{}
	allIDs := []primitive.ObjectID{}
	for _, note := range notes {
		for _, id := range note.Tags {
			if !seen[id] {
				seen[id] = true
				allIDs = append(allIDs, id)
			}
		}
	}

	resolved, err := s.Tags.FindTagsByIDs(ctx, allIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]model.Tag, len(resolved))
	for _, tag := range resolved {
		byID[tag.ID] = tag
	}

	populated := make([]*model.PopulatedNote, 0, len(notes))
	for _, note := range notes {
		tags := make([]model.Tag, 0, len(note.Tags))
		for _, id := range note.Tags {
			if tag, ok := byID[id]; ok {
				tags = append(tags, tag)
			}
		}
		populated = append(populated, &model.PopulatedNote{
			ID:        note.ID,
			Text:      note.Text,
			User:      note.User,
			Tags:      tags,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}
	return populated, nil
}

// parseTagIDs converts hex ids to object ids, dropping duplicates and
// anything that does not parse. Order is preserved.
func parseTagIDs(ids []string) []primitive.ObjectID {
	parsed := make([]primitive.ObjectID, 0, len(ids))
	seen := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil || seen[objectID] {
			continue
		}
		seen[objectID] = true
		parsed = append(parsed, objectID)
	}
	return parsed
}
