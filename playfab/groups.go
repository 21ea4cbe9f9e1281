package playfab

import "context"

var (
	groupsAcceptGroupApplication      = register("Groups", "AcceptGroupApplication", "/Group/AcceptGroupApplication", AuthEntityToken)
	groupsAcceptGroupInvitation       = register("Groups", "AcceptGroupInvitation", "/Group/AcceptGroupInvitation", AuthEntityToken)
	groupsAddMembers                  = register("Groups", "AddMembers", "/Group/AddMembers", AuthEntityToken)
	groupsApplyToGroup                = register("Groups", "ApplyToGroup", "/Group/ApplyToGroup", AuthEntityToken)
	groupsBlockEntity                 = register("Groups", "BlockEntity", "/Group/BlockEntity", AuthEntityToken)
	groupsChangeMemberRole            = register("Groups", "ChangeMemberRole", "/Group/ChangeMemberRole", AuthEntityToken)
	groupsCreateGroup                 = register("Groups", "CreateGroup", "/Group/CreateGroup", AuthEntityToken)
	groupsCreateRole                  = register("Groups", "CreateRole", "/Group/CreateRole", AuthEntityToken)
	groupsDeleteGroup                 = register("Groups", "DeleteGroup", "/Group/DeleteGroup", AuthEntityToken)
	groupsDeleteRole                  = register("Groups", "DeleteRole", "/Group/DeleteRole", AuthEntityToken)
	groupsGetGroup                    = register("Groups", "GetGroup", "/Group/GetGroup", AuthEntityToken)
	groupsInviteToGroup               = register("Groups", "InviteToGroup", "/Group/InviteToGroup", AuthEntityToken)
	groupsIsMember                    = register("Groups", "IsMember", "/Group/IsMember", AuthEntityToken)
	groupsListGroupApplications       = register("Groups", "ListGroupApplications", "/Group/ListGroupApplications", AuthEntityToken)
	groupsListGroupBlocks             = register("Groups", "ListGroupBlocks", "/Group/ListGroupBlocks", AuthEntityToken)
	groupsListGroupInvitations        = register("Groups", "ListGroupInvitations", "/Group/ListGroupInvitations", AuthEntityToken)
	groupsListGroupMembers            = register("Groups", "ListGroupMembers", "/Group/ListGroupMembers", AuthEntityToken)
	groupsListMembership              = register("Groups", "ListMembership", "/Group/ListMembership", AuthEntityToken)
	groupsListMembershipOpportunities = register("Groups", "ListMembershipOpportunities", "/Group/ListMembershipOpportunities", AuthEntityToken)
	groupsRemoveGroupApplication      = register("Groups", "RemoveGroupApplication", "/Group/RemoveGroupApplication", AuthEntityToken)
	groupsRemoveGroupInvitation       = register("Groups", "RemoveGroupInvitation", "/Group/RemoveGroupInvitation", AuthEntityToken)
	groupsRemoveMembers               = register("Groups", "RemoveMembers", "/Group/RemoveMembers", AuthEntityToken)
	groupsUnblockEntity               = register("Groups", "UnblockEntity", "/Group/UnblockEntity", AuthEntityToken)
	groupsUpdateGroup                 = register("Groups", "UpdateGroup", "/Group/UpdateGroup", AuthEntityToken)
	groupsUpdateRole                  = register("Groups", "UpdateRole", "/Group/UpdateRole", AuthEntityToken)
)

// GroupsAPI manages entity groups. Every call requires an entity token.
type GroupsAPI struct {
	client *Client
}

// AcceptGroupApplication accepts an outstanding application to join a group.
func (a *GroupsAPI) AcceptGroupApplication(ctx context.Context, req *AcceptGroupApplicationRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsAcceptGroupApplication, req, opts)
}

// AcceptGroupInvitation accepts an outstanding invitation to join a group.
func (a *GroupsAPI) AcceptGroupInvitation(ctx context.Context, req *AcceptGroupInvitationRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsAcceptGroupInvitation, req, opts)
}

// AddMembers adds members to a group or role without an invitation or application.
func (a *GroupsAPI) AddMembers(ctx context.Context, req *AddMembersRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsAddMembers, req, opts)
}

// ApplyToGroup applies to join a group.
func (a *GroupsAPI) ApplyToGroup(ctx context.Context, req *ApplyToGroupRequest, opts ...CallOption) (*ApplyToGroupResponse, error) {
	return invoke[ApplyToGroupResponse](ctx, a.client, groupsApplyToGroup, req, opts)
}

// BlockEntity blocks a list of entities from joining a group.
func (a *GroupsAPI) BlockEntity(ctx context.Context, req *BlockEntityRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsBlockEntity, req, opts)
}

// ChangeMemberRole moves members from one role to another.
func (a *GroupsAPI) ChangeMemberRole(ctx context.Context, req *ChangeMemberRoleRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsChangeMemberRole, req, opts)
}

// CreateGroup creates a new group. The calling entity becomes its administrator unless
// Entity is set.
func (a *GroupsAPI) CreateGroup(ctx context.Context, req *CreateGroupRequest, opts ...CallOption) (*CreateGroupResponse, error) {
	return invoke[CreateGroupResponse](ctx, a.client, groupsCreateGroup, req, opts)
}

// CreateRole creates a new group role.
func (a *GroupsAPI) CreateRole(ctx context.Context, req *CreateGroupRoleRequest, opts ...CallOption) (*CreateGroupRoleResponse, error) {
	return invoke[CreateGroupRoleResponse](ctx, a.client, groupsCreateRole, req, opts)
}

// DeleteGroup deletes a group and all roles, invitations, join requests and blocks associated with it.
func (a *GroupsAPI) DeleteGroup(ctx context.Context, req *DeleteGroupRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsDeleteGroup, req, opts)
}

func (a *GroupsAPI) DeleteRole(ctx context.Context, req *DeleteRoleRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsDeleteRole, req, opts)
}

// GetGroup gets information about a group and its roles.
func (a *GroupsAPI) GetGroup(ctx context.Context, req *GetGroupRequest, opts ...CallOption) (*GetGroupResponse, error) {
	return invoke[GetGroupResponse](ctx, a.client, groupsGetGroup, req, opts)
}

// InviteToGroup invites an entity to join a group.
func (a *GroupsAPI) InviteToGroup(ctx context.Context, req *InviteToGroupRequest, opts ...CallOption) (*InviteToGroupResponse, error) {
	return invoke[InviteToGroupResponse](ctx, a.client, groupsInviteToGroup, req, opts)
}

// IsMember checks whether an entity is a member of a group, optionally in a given role.
func (a *GroupsAPI) IsMember(ctx context.Context, req *IsMemberRequest, opts ...CallOption) (*IsMemberResponse, error) {
	return invoke[IsMemberResponse](ctx, a.client, groupsIsMember, req, opts)
}

func (a *GroupsAPI) ListGroupApplications(ctx context.Context, req *ListGroupApplicationsRequest, opts ...CallOption) (*ListGroupApplicationsResponse, error) {
	return invoke[ListGroupApplicationsResponse](ctx, a.client, groupsListGroupApplications, req, opts)
}

func (a *GroupsAPI) ListGroupBlocks(ctx context.Context, req *ListGroupBlocksRequest, opts ...CallOption) (*ListGroupBlocksResponse, error) {
	return invoke[ListGroupBlocksResponse](ctx, a.client, groupsListGroupBlocks, req, opts)
}

func (a *GroupsAPI) ListGroupInvitations(ctx context.Context, req *ListGroupInvitationsRequest, opts ...CallOption) (*ListGroupInvitationsResponse, error) {
	return invoke[ListGroupInvitationsResponse](ctx, a.client, groupsListGroupInvitations, req, opts)
}

// ListGroupMembers lists the members of a group grouped by role.
func (a *GroupsAPI) ListGroupMembers(ctx context.Context, req *ListGroupMembersRequest, opts ...CallOption) (*ListGroupMembersResponse, error) {
	return invoke[ListGroupMembersResponse](ctx, a.client, groupsListGroupMembers, req, opts)
}

// ListMembership lists the groups and roles an entity belongs to.
func (a *GroupsAPI) ListMembership(ctx context.Context, req *ListMembershipRequest, opts ...CallOption) (*ListMembershipResponse, error) {
	return invoke[ListMembershipResponse](ctx, a.client, groupsListMembership, req, opts)
}

// ListMembershipOpportunities lists the open applications and invitations of an entity.
func (a *GroupsAPI) ListMembershipOpportunities(ctx context.Context, req *ListMembershipOpportunitiesRequest, opts ...CallOption) (*ListMembershipOpportunitiesResponse, error) {
	return invoke[ListMembershipOpportunitiesResponse](ctx, a.client, groupsListMembershipOpportunities, req, opts)
}

func (a *GroupsAPI) RemoveGroupApplication(ctx context.Context, req *RemoveGroupApplicationRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsRemoveGroupApplication, req, opts)
}

func (a *GroupsAPI) RemoveGroupInvitation(ctx context.Context, req *RemoveGroupInvitationRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsRemoveGroupInvitation, req, opts)
}

// RemoveMembers removes members from a group, or only from a role when RoleId is set.
func (a *GroupsAPI) RemoveMembers(ctx context.Context, req *RemoveMembersRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsRemoveMembers, req, opts)
}

func (a *GroupsAPI) UnblockEntity(ctx context.Context, req *UnblockEntityRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, groupsUnblockEntity, req, opts)
}

// UpdateGroup updates non-membership data about a group.
func (a *GroupsAPI) UpdateGroup(ctx context.Context, req *UpdateGroupRequest, opts ...CallOption) (*UpdateGroupResponse, error) {
	return invoke[UpdateGroupResponse](ctx, a.client, groupsUpdateGroup, req, opts)
}

func (a *GroupsAPI) UpdateRole(ctx context.Context, req *UpdateGroupRoleRequest, opts ...CallOption) (*UpdateGroupRoleResponse, error) {
	return invoke[UpdateGroupRoleResponse](ctx, a.client, groupsUpdateRole, req, opts)
}
