package playfab

import "time"

type AcceptGroupApplicationRequest struct {
	RequestBase
	// Entity is the applicant.
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type AcceptGroupInvitationRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity,omitempty"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type AddMembersRequest struct {
	RequestBase
	Group   *EntityKey  `json:"Group" validate:"required"`
	Members []EntityKey `json:"Members" validate:"required,dive"`
	RoleId  string      `json:"RoleId,omitempty"`
}

type ApplyToGroupRequest struct {
	RequestBase
	AutoAcceptOutstandingInvite *bool      `json:"AutoAcceptOutstandingInvite,omitempty"`
	Entity                      *EntityKey `json:"Entity,omitempty"`
	Group                       *EntityKey `json:"Group" validate:"required"`
}

type ApplyToGroupResponse struct {
	Entity  *EntityWithLineage `json:"Entity,omitempty"`
	Expires time.Time          `json:"Expires"`
	Group   *EntityKey         `json:"Group,omitempty"`
}

type BlockEntityRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type ChangeMemberRoleRequest struct {
	RequestBase
	// DestinationRoleId defaults to the group's member role when empty.
	DestinationRoleId string      `json:"DestinationRoleId,omitempty"`
	Group             *EntityKey  `json:"Group" validate:"required"`
	Members           []EntityKey `json:"Members" validate:"required,dive"`
	OriginRoleId      string      `json:"OriginRoleId" validate:"required"`
}

type CreateGroupRequest struct {
	RequestBase
	// Entity becomes the group's first administrator. Defaults to the caller.
	Entity    *EntityKey `json:"Entity,omitempty"`
	GroupName string     `json:"GroupName" validate:"required"`
}

type CreateGroupResponse struct {
	AdminRoleId    string            `json:"AdminRoleId,omitempty"`
	Created        time.Time         `json:"Created"`
	Group          EntityKey         `json:"Group"`
	GroupName      string            `json:"GroupName,omitempty"`
	MemberRoleId   string            `json:"MemberRoleId,omitempty"`
	ProfileVersion int32             `json:"ProfileVersion"`
	Roles          map[string]string `json:"Roles,omitempty"`
}

type CreateGroupRoleRequest struct {
	RequestBase
	Group    *EntityKey `json:"Group" validate:"required"`
	RoleId   string     `json:"RoleId" validate:"required"`
	RoleName string     `json:"RoleName" validate:"required"`
}

type CreateGroupRoleResponse struct {
	ProfileVersion int32  `json:"ProfileVersion"`
	RoleId         string `json:"RoleId,omitempty"`
	RoleName       string `json:"RoleName,omitempty"`
}

type DeleteGroupRequest struct {
	RequestBase
	Group *EntityKey `json:"Group" validate:"required"`
}

type DeleteRoleRequest struct {
	RequestBase
	Group  *EntityKey `json:"Group" validate:"required"`
	RoleId string     `json:"RoleId,omitempty"`
}

// GetGroupRequest looks a group up by key or by name; one of the two must be set.
type GetGroupRequest struct {
	RequestBase
	Group     *EntityKey `json:"Group,omitempty" validate:"required_without=GroupName"`
	GroupName string     `json:"GroupName,omitempty"`
}

type GetGroupResponse struct {
	AdminRoleId    string            `json:"AdminRoleId,omitempty"`
	Created        time.Time         `json:"Created"`
	Group          EntityKey         `json:"Group"`
	GroupName      string            `json:"GroupName,omitempty"`
	MemberRoleId   string            `json:"MemberRoleId,omitempty"`
	ProfileVersion int32             `json:"ProfileVersion"`
	Roles          map[string]string `json:"Roles,omitempty"`
}

type InviteToGroupRequest struct {
	RequestBase
	AutoAcceptOutstandingApplication *bool      `json:"AutoAcceptOutstandingApplication,omitempty"`
	Entity                           *EntityKey `json:"Entity" validate:"required"`
	Group                            *EntityKey `json:"Group" validate:"required"`
	RoleId                           string     `json:"RoleId,omitempty"`
}

type InviteToGroupResponse struct {
	Expires         time.Time          `json:"Expires"`
	Group           *EntityKey         `json:"Group,omitempty"`
	InvitedByEntity *EntityWithLineage `json:"InvitedByEntity,omitempty"`
	InvitedEntity   *EntityWithLineage `json:"InvitedEntity,omitempty"`
	RoleId          string             `json:"RoleId,omitempty"`
}

type IsMemberRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
	RoleId string     `json:"RoleId,omitempty"`
}

type IsMemberResponse struct {
	IsMember bool `json:"IsMember"`
}

type GroupApplication struct {
	Entity  *EntityWithLineage `json:"Entity,omitempty"`
	Expires time.Time          `json:"Expires"`
	Group   *EntityKey         `json:"Group,omitempty"`
}

type GroupBlock struct {
	Entity *EntityWithLineage `json:"Entity,omitempty"`
	Group  EntityKey          `json:"Group"`
}

type GroupInvitation struct {
	Expires         time.Time          `json:"Expires"`
	Group           *EntityKey         `json:"Group,omitempty"`
	InvitedByEntity *EntityWithLineage `json:"InvitedByEntity,omitempty"`
	InvitedEntity   *EntityWithLineage `json:"InvitedEntity,omitempty"`
	RoleId          string             `json:"RoleId,omitempty"`
}

type GroupRole struct {
	RoleId   string `json:"RoleId,omitempty"`
	RoleName string `json:"RoleName,omitempty"`
}

type GroupWithRoles struct {
	Group          *EntityKey  `json:"Group,omitempty"`
	GroupName      string      `json:"GroupName,omitempty"`
	ProfileVersion int32       `json:"ProfileVersion"`
	Roles          []GroupRole `json:"Roles,omitempty"`
}

type EntityMemberRole struct {
	Members  []EntityWithLineage `json:"Members,omitempty"`
	RoleId   string              `json:"RoleId,omitempty"`
	RoleName string              `json:"RoleName,omitempty"`
}

type ListGroupApplicationsRequest struct {
	RequestBase
	Group *EntityKey `json:"Group" validate:"required"`
}

type ListGroupApplicationsResponse struct {
	Applications []GroupApplication `json:"Applications,omitempty"`
}

type ListGroupBlocksRequest struct {
	RequestBase
	Group *EntityKey `json:"Group" validate:"required"`
}

type ListGroupBlocksResponse struct {
	BlockedEntities []GroupBlock `json:"BlockedEntities,omitempty"`
}

type ListGroupInvitationsRequest struct {
	RequestBase
	Group *EntityKey `json:"Group" validate:"required"`
}

type ListGroupInvitationsResponse struct {
	Invitations []GroupInvitation `json:"Invitations,omitempty"`
}

type ListGroupMembersRequest struct {
	RequestBase
	Group *EntityKey `json:"Group" validate:"required"`
}

type ListGroupMembersResponse struct {
	Members []EntityMemberRole `json:"Members,omitempty"`
}

type ListMembershipRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity,omitempty"`
}

type ListMembershipResponse struct {
	Groups []GroupWithRoles `json:"Groups,omitempty"`
}

type ListMembershipOpportunitiesRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity,omitempty"`
}

type ListMembershipOpportunitiesResponse struct {
	Applications []GroupApplication `json:"Applications,omitempty"`
	Invitations  []GroupInvitation  `json:"Invitations,omitempty"`
}

type RemoveGroupApplicationRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type RemoveGroupInvitationRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type RemoveMembersRequest struct {
	RequestBase
	Group   *EntityKey  `json:"Group" validate:"required"`
	Members []EntityKey `json:"Members" validate:"required,dive"`
	RoleId  string      `json:"RoleId,omitempty"`
}

type UnblockEntityRequest struct {
	RequestBase
	Entity *EntityKey `json:"Entity" validate:"required"`
	Group  *EntityKey `json:"Group" validate:"required"`
}

type UpdateGroupRequest struct {
	RequestBase
	AdminRoleId string `json:"AdminRoleId,omitempty"`
	// ExpectedProfileVersion makes the update fail when the group changed in between.
	ExpectedProfileVersion *int32     `json:"ExpectedProfileVersion,omitempty"`
	Group                  *EntityKey `json:"Group" validate:"required"`
	GroupName              string     `json:"GroupName,omitempty"`
	MemberRoleId           string     `json:"MemberRoleId,omitempty"`
}

// Results of an update operation.
const (
	OperationCreated = "Created"
	OperationUpdated = "Updated"
	OperationDeleted = "Deleted"
	OperationNone    = "None"
)

type UpdateGroupResponse struct {
	OperationReason string `json:"OperationReason,omitempty"`
	ProfileVersion  int32  `json:"ProfileVersion"`
	SetResult       string `json:"SetResult,omitempty"`
}

type UpdateGroupRoleRequest struct {
	RequestBase
	ExpectedProfileVersion *int32     `json:"ExpectedProfileVersion,omitempty"`
	Group                  *EntityKey `json:"Group" validate:"required"`
	RoleId                 string     `json:"RoleId,omitempty"`
	RoleName               string     `json:"RoleName" validate:"required"`
}

type UpdateGroupRoleResponse struct {
	OperationReason string `json:"OperationReason,omitempty"`
	ProfileVersion  int32  `json:"ProfileVersion"`
	SetResult       string `json:"SetResult,omitempty"`
}
