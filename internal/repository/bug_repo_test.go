package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buggie/internal/model"
	pkgErrors "buggie/pkg/errors"
)

func TestBugRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)

	project := &model.Project{Name: "apollo", Active: true}
	require.NoError(t, NewProjectRepository(db).Create(project))

	repo := NewBugRepository(db)
	bug := &model.Bug{
		Title:     "engine failure",
		Summary:   "second stage does not ignite",
		ProjectID: project.ID,
		State:     model.BugStateOpen,
	}
	require.NoError(t, repo.Create(bug))

	found, err := repo.FindByID(bug.ID)
	require.NoError(t, err)
	assert.Equal(t, "engine failure", found.Title)
	assert.Equal(t, project.ID, found.ProjectID)
	assert.Nil(t, found.AssignedToID)
	assert.Equal(t, model.BugStateOpen, found.State)

	_, err = repo.FindByID(1000)
	assert.ErrorIs(t, err, pkgErrors.ErrBugNotFound)
}

func TestBugRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)

	project := &model.Project{Name: "apollo", Active: true}
	require.NoError(t, NewProjectRepository(db).Create(project))
	user := &model.User{Username: "alice", Email: "alice@example.com", Active: true}
	require.NoError(t, NewUserRepository(db).Create(user))

	repo := NewBugRepository(db)
	bug := &model.Bug{Title: "engine failure", ProjectID: project.ID, State: model.BugStateOpen}
	require.NoError(t, repo.Create(bug))

	bug.State = model.BugStateResolved
	bug.AssignedToID = &user.ID
	require.NoError(t, repo.Update(bug))

	found, err := repo.FindByID(bug.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BugStateResolved, found.State)
	require.NotNil(t, found.AssignedToID)
	assert.Equal(t, user.ID, *found.AssignedToID)
}
