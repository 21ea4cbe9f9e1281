package playfab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecordNilRequestIsEmpty(t *testing.T) {
	record, err := buildRecord[CreateGroupRequest](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, CreateGroupRequest{}, *record)
}

func TestBuildRecordOverrideWins(t *testing.T) {
	original := &CreateGroupRequest{
		GroupName: "Old",
		Entity:    &EntityKey{Id: "P1", Type: EntityTypeTitlePlayerAccount},
	}

	record, err := buildRecord(original, []any{CreateGroupRequest{GroupName: "Clan"}})
	require.NoError(t, err)

	assert.Equal(t, "Clan", record.GroupName)
	// Zero fields of the override keep the record's value.
	assert.Equal(t, "P1", record.Entity.Id)
	// The caller's record is untouched.
	assert.Equal(t, "Old", original.GroupName)
	assert.NotSame(t, original, record)
}

func TestBuildRecordOverridesApplyInOrder(t *testing.T) {
	record, err := buildRecord(&GetTitleDataRequest{}, []any{
		&GetTitleDataRequest{Keys: []string{"a"}, OverrideLabel: "first"},
		GetTitleDataRequest{OverrideLabel: "second"},
		(*GetTitleDataRequest)(nil),
	})
	require.NoError(t, err)

	want := GetTitleDataRequest{Keys: []string{"a"}, OverrideLabel: "second"}
	if diff := cmp.Diff(want, *record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRecordOverridesTrueWithFalse(t *testing.T) {
	original := &CreateLobbyRequest{
		MaxPlayers:                  8,
		RestrictInvitesToLobbyOwner: lo.ToPtr(true),
		UseConnections:              lo.ToPtr(true),
	}

	record, err := buildRecord(original, []any{CreateLobbyRequest{UseConnections: lo.ToPtr(false)}})
	require.NoError(t, err)

	assert.False(t, *record.UseConnections)
	assert.True(t, *record.RestrictInvitesToLobbyOwner)
	assert.True(t, *original.UseConnections)
}

func TestBuildRecordOverridesNumberWithZero(t *testing.T) {
	record, err := buildRecord(&GetLeaderboardRequest{StatisticName: "score", StartPosition: lo.ToPtr(int32(20))},
		[]any{GetLeaderboardRequest{StartPosition: lo.ToPtr(int32(0))}})
	require.NoError(t, err)
	assert.Equal(t, int32(0), *record.StartPosition)
	assert.Equal(t, "score", record.StatisticName)
}

func TestBuildRecordMergesEmbeddedBase(t *testing.T) {
	ac := &AuthenticationContext{EntityToken: "override"}
	original := &DeleteGroupRequest{
		RequestBase: RequestBase{CustomTags: map[string]string{"source": "test"}},
		Group:       &EntityKey{Id: "G1"},
	}

	record, err := buildRecord(original, []any{DeleteGroupRequest{RequestBase: RequestBase{AuthenticationContext: ac}}})
	require.NoError(t, err)

	assert.Same(t, ac, record.AuthenticationContext)
	assert.Equal(t, "test", record.CustomTags["source"])
	assert.Equal(t, "G1", record.Group.Id)
	assert.Nil(t, original.AuthenticationContext)
}

func TestBuildRecordRejectsOtherTypes(t *testing.T) {
	_, err := buildRecord(&CreateGroupRequest{}, []any{DeleteGroupRequest{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverrideType))
	assert.Contains(t, err.Error(), "playfab.DeleteGroupRequest")
	assert.True(t, IsLocal(err))
}
