package vaiz

import (
	"context"
	"testing"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsAndMilestones(t *testing.T) {
	c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
		"getProjects":     ok(map[string]any{"projects": []any{map[string]any{"id": "p1", "name": "Core"}}}),
		"getProject":      ok(map[string]any{"project": map[string]any{"id": "p1"}}),
		"getMilestones":   ok(map[string]any{"milestones": []any{map[string]any{"id": "m1"}}}),
		"getMilestone":    ok(map[string]any{"milestone": map[string]any{"id": "m1", "name": "v1"}}),
		"createMilestone": ok(map[string]any{"milestone": map[string]any{"id": "m2"}}),
		"editMilestone":   ok(map[string]any{"milestone": map[string]any{"id": "m2", "name": "v2"}}),
		"toggleMilestone": ok(map[string]any{"milestone": map[string]any{"id": "m2", "completed": true}}),
	})
	ctx := context.Background()

	projects, err := c.GetProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Core", projects.Projects[0].Name)

	_, err = c.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", api.calls("getProject")[0].Body["projectId"])

	ms, err := c.GetMilestones(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, ms.Milestones, 1)

	m, err := c.GetMilestone(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "v1", m.Milestone.Name)
	assert.Equal(t, "m1", api.calls("getMilestone")[0].Body["_id"])

	_, err = c.CreateMilestone(ctx, models.CreateMilestoneRequest{Name: "v2", Board: "b1", Project: "p1"})
	require.NoError(t, err)
	_, err = c.CreateMilestone(ctx, models.CreateMilestoneRequest{Name: "v2"})
	assert.ErrorIs(t, err, apierrors.ErrInvalidRequest)

	_, err = c.EditMilestone(ctx, models.EditMilestoneRequest{MilestoneID: "m2", Name: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "m2", api.calls("editMilestone")[0].Body["_id"])

	toggled, err := c.ToggleMilestone(ctx, models.ToggleMilestoneRequest{MilestoneID: "m2", Completed: true})
	require.NoError(t, err)
	assert.True(t, toggled.Milestone.Completed)

	_, err = c.GetProject(ctx, "")
	assert.ErrorIs(t, err, apierrors.ErrInvalidRequest)
}

func TestSpaceMembersProfile(t *testing.T) {
	c, api := newTestClient(t, map[string]func(map[string]any) (int, any){
		"getSpace":        ok(map[string]any{"space": map[string]any{"id": "space-1", "name": "Acme"}}),
		"getSpaceMembers": ok(map[string]any{"members": []any{map[string]any{"id": "u1", "email": "a@b.c"}}}),
	})
	ctx := context.Background()

	space, err := c.GetSpace(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", space.Space.Name)
	assert.Equal(t, "space-1", api.calls("getSpace")[0].Body["spaceId"])

	_, err = c.GetSpace(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "other", api.calls("getSpace")[1].Body["spaceId"])

	members, err := c.GetSpaceMembers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", members.Members[0].Email)
	assert.Equal(t, "{}", api.calls("getSpaceMembers")[0].Raw)
}
