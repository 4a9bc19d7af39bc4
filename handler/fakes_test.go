package handler

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"notable/auth"
	"notable/config"
	"notable/middleware"
	"notable/model"
	"notable/usecase"
)

// In-memory stores and a fully wired test router. The route layout
// mirrors main.setupRouter.

type memUserStore struct {
	users []*model.User
}

func (m *memUserStore) InsertUser(_ context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return errors.New("E11000 duplicate key error")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *memUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range m.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) FindUserByID(_ context.Context, id string) (*model.User, error) {
	for _, user := range m.users {
		if user.ID.Hex() == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) ListUsers(_ context.Context) ([]*model.User, error) {
	return m.users, nil
}

func (m *memUserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, salt, digest string) (int64, error) {
	for _, user := range m.users {
		if user.ID == id {
			user.Salt = salt
			user.Password = digest
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memUserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, firstName, lastName, displayName string) (int64, error) {
	for _, user := range m.users {
		if user.ID == id {
			user.FirstName = firstName
			user.LastName = lastName
			user.DisplayName = displayName
			return 1, nil
		}
	}
	return 0, nil
}

type memNoteStore struct {
	notes []*model.Note
}

func (m *memNoteStore) ListNotes(_ context.Context, owner *primitive.ObjectID) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, note := range m.notes {
		if owner != nil && note.User != *owner {
			continue
		}
		found := *note
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (m *memNoteStore) FindNoteByID(_ context.Context, id primitive.ObjectID) (*model.Note, error) {
	for _, note := range m.notes {
		if note.ID == id {
			found := *note
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memNoteStore) InsertNote(_ context.Context, note *model.Note) error {
	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	if note.Tags == nil {
		note.Tags = []primitive.ObjectID{}
	}

	stored := *note
	m.notes = append(m.notes, &stored)
	return nil
}

func (m *memNoteStore) UpdateNote(_ context.Context, note *model.Note) error {
	for _, stored := range m.notes {
		if stored.ID == note.ID {
			stored.Text = note.Text
			stored.Tags = note.Tags
			stored.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (m *memNoteStore) DeleteNote(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, note := range m.notes {
		if note.ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memTagStore struct {
	tags []*model.Tag
}

func (m *memTagStore) ListTags(_ context.Context) ([]*model.Tag, error) {
	return m.tags, nil
}

func (m *memTagStore) FindTagByID(_ context.Context, id primitive.ObjectID) (*model.Tag, error) {
	for _, tag := range m.tags {
		if tag.ID == id {
			found := *tag
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memTagStore) FindTagsByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Tag, error) {
	byID := map[primitive.ObjectID]model.Tag{}
	for _, tag := range m.tags {
		byID[tag.ID] = *tag
	}

	ordered := []model.Tag{}
	for _, id := range ids {
		if tag, ok := byID[id]; ok {
			ordered = append(ordered, tag)
		}
	}
	return ordered, nil
}

func (m *memTagStore) InsertTag(_ context.Context, tag *model.Tag) error {
	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}
	tag.CreatedAt = time.Now()
	tag.UpdatedAt = tag.CreatedAt

	stored := *tag
	m.tags = append(m.tags, &stored)
	return nil
}

func (m *memTagStore) UpdateTag(_ context.Context, tag *model.Tag) error {
	for _, stored := range m.tags {
		if stored.ID == tag.ID {
			stored.Name = tag.Name
			stored.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (m *memTagStore) DeleteTag(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i, tag := range m.tags {
		if tag.ID == id {
			m.tags = append(m.tags[:i], m.tags[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type testEnv struct {
	router *gin.Engine
	users  *memUserStore
	notes  *memNoteStore
	tags   *memTagStore
	tokens *auth.TokenService
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	users := &memUserStore{}
	notes := &memNoteStore{}
	tags := &memTagStore{}

	tokens := auth.NewTokenService(&config.Config{
		AppSecret:    "test-secret",
		TokenTimeout: time.Hour,
	})
	requireAuth := middleware.RequireAuth(auth.NewBearerStrategy(tokens, users))

	authHandler := NewAuthHandler(usecase.NewAuthService(users, tokens))
	noteHandler := NewNoteHandler(usecase.NewNoteService(notes, tags))
	tagHandler := NewTagHandler(usecase.NewTagService(tags))
	userHandler := NewUserHandler(usecase.NewUserService(users))

	router := gin.New()
	router.GET("/ping", Ping)
	router.GET("/secured/ping", requireAuth, SecuredPing)

	router.POST("/api/auth/signin", authHandler.Signin)
	router.POST("/api/auth/signup", authHandler.Signup)

	protected := router.Group("/api")
	protected.Use(requireAuth)
	{
		protected.GET("/notes", noteHandler.ListNotes)
		protected.GET("/notes/:id", noteHandler.GetNote)
		protected.GET("/notes/:id/tags", noteHandler.GetNoteTags)
		protected.POST("/notes", noteHandler.CreateNote)
		protected.PUT("/notes/:id", noteHandler.UpdateNote)
		protected.DELETE("/notes/:id", noteHandler.DeleteNote)

		protected.GET("/tags", tagHandler.ListTags)
		protected.GET("/tags/:id", tagHandler.GetTag)
		protected.POST("/tags", tagHandler.CreateTag)
		protected.PUT("/tags/:id", tagHandler.UpdateTag)
		protected.DELETE("/tags/:id", tagHandler.DeleteTag)

		protected.GET("/users", userHandler.ListUsers)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.GET("/user/profile", userHandler.GetProfile)
		protected.PUT("/user/profile", userHandler.UpdateProfile)
		protected.PUT("/user/password", userHandler.ChangePassword)
	}

	return &testEnv{router: router, users: users, notes: notes, tags: tags, tokens: tokens}
}
