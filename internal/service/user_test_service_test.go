package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTestDetailsStripsKeyMaterial(t *testing.T) {
	repo := newMockTestRepo()
	created, err := NewAdminTestService(repo).CreateTest(validTestCreate())
	require.NoError(t, err)

	details, err := NewUserTestService(repo).GetTestDetails(created.ID)
	require.NoError(t, err)

	require.Len(t, details.Sections, 2)
	mc := details.Sections[0].Questions[0]
	assert.Equal(t, []string{"opt-a", "opt-b", "opt-c"}, mc.Choices)

	// Non-choice questions expose no choices either.
	tf := details.Sections[0].Questions[1]
	assert.Empty(t, tf.Choices)
	essay := details.Sections[1].Questions[1]
	assert.Empty(t, essay.Choices)
}

func TestGetTestDetailsNotFound(t *testing.T) {
	svc := NewUserTestService(newMockTestRepo())

	_, err := svc.GetTestDetails("missing")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestGetAllTests(t *testing.T) {
	repo := newMockTestRepo()
	admin := NewAdminTestService(repo)

	_, err := admin.CreateTest(validTestCreate())
	require.NoError(t, err)

	second := validTestCreate()
	second.Title = "Midterm Exam B"
	_, err = admin.CreateTest(second)
	require.NoError(t, err)

	summaries, err := NewUserTestService(repo).GetAllTests()
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	for _, summary := range summaries {
		assert.Equal(t, 60.0, summary.PassingPercentage)
	}
}
