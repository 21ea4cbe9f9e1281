package playfab

import "context"

var (
	serverLoginWithServerCustomId     = register("Server", "LoginWithServerCustomId", "/Server/LoginWithServerCustomId", AuthDevSecretKey)
	serverAuthenticateSessionTicket   = register("Server", "AuthenticateSessionTicket", "/Server/AuthenticateSessionTicket", AuthDevSecretKey)
	serverGetUserData                 = register("Server", "GetUserData", "/Server/GetUserData", AuthDevSecretKey)
	serverGetUserReadOnlyData         = register("Server", "GetUserReadOnlyData", "/Server/GetUserReadOnlyData", AuthDevSecretKey)
	serverGetUserInternalData         = register("Server", "GetUserInternalData", "/Server/GetUserInternalData", AuthDevSecretKey)
	serverUpdateUserData              = register("Server", "UpdateUserData", "/Server/UpdateUserData", AuthDevSecretKey)
	serverUpdateUserReadOnlyData      = register("Server", "UpdateUserReadOnlyData", "/Server/UpdateUserReadOnlyData", AuthDevSecretKey)
	serverUpdateUserInternalData      = register("Server", "UpdateUserInternalData", "/Server/UpdateUserInternalData", AuthDevSecretKey)
	serverGetTitleData                = register("Server", "GetTitleData", "/Server/GetTitleData", AuthDevSecretKey)
	serverGetTitleInternalData        = register("Server", "GetTitleInternalData", "/Server/GetTitleInternalData", AuthDevSecretKey)
	serverSetTitleData                = register("Server", "SetTitleData", "/Server/SetTitleData", AuthDevSecretKey)
	serverSetTitleInternalData        = register("Server", "SetTitleInternalData", "/Server/SetTitleInternalData", AuthDevSecretKey)
	serverGetPlayerProfile            = register("Server", "GetPlayerProfile", "/Server/GetPlayerProfile", AuthDevSecretKey)
	serverGetUserAccountInfo          = register("Server", "GetUserAccountInfo", "/Server/GetUserAccountInfo", AuthDevSecretKey)
	serverAddPlayerTag                = register("Server", "AddPlayerTag", "/Server/AddPlayerTag", AuthDevSecretKey)
	serverRemovePlayerTag             = register("Server", "RemovePlayerTag", "/Server/RemovePlayerTag", AuthDevSecretKey)
	serverGetPlayerTags               = register("Server", "GetPlayerTags", "/Server/GetPlayerTags", AuthDevSecretKey)
	serverBanUsers                    = register("Server", "BanUsers", "/Server/BanUsers", AuthDevSecretKey)
	serverRevokeAllBansForUser        = register("Server", "RevokeAllBansForUser", "/Server/RevokeAllBansForUser", AuthDevSecretKey)
	serverGetPlayerStatistics         = register("Server", "GetPlayerStatistics", "/Server/GetPlayerStatistics", AuthDevSecretKey)
	serverUpdatePlayerStatistics      = register("Server", "UpdatePlayerStatistics", "/Server/UpdatePlayerStatistics", AuthDevSecretKey)
	serverGetLeaderboard              = register("Server", "GetLeaderboard", "/Server/GetLeaderboard", AuthDevSecretKey)
	serverAddUserVirtualCurrency      = register("Server", "AddUserVirtualCurrency", "/Server/AddUserVirtualCurrency", AuthDevSecretKey)
	serverSubtractUserVirtualCurrency = register("Server", "SubtractUserVirtualCurrency", "/Server/SubtractUserVirtualCurrency", AuthDevSecretKey)
	serverGetUserInventory            = register("Server", "GetUserInventory", "/Server/GetUserInventory", AuthDevSecretKey)
	serverGrantItemsToUser            = register("Server", "GrantItemsToUser", "/Server/GrantItemsToUser", AuthDevSecretKey)
	serverWritePlayerEvent            = register("Server", "WritePlayerEvent", "/Server/WritePlayerEvent", AuthDevSecretKey)
	serverWriteTitleEvent             = register("Server", "WriteTitleEvent", "/Server/WriteTitleEvent", AuthDevSecretKey)
	serverExecuteCloudScript          = register("Server", "ExecuteCloudScript", "/Server/ExecuteCloudScript", AuthDevSecretKey)
)

// ServerAPI is the trusted server surface. Calls use the developer secret key.
type ServerAPI struct {
	client *Client
}

// AuthenticateSessionTicket validates a client's session ticket and returns the account it belongs to.
func (a *ServerAPI) AuthenticateSessionTicket(ctx context.Context, req *AuthenticateSessionTicketRequest, opts ...CallOption) (*AuthenticateSessionTicketResult, error) {
	return invoke[AuthenticateSessionTicketResult](ctx, a.client, serverAuthenticateSessionTicket, req, opts)
}

// GetUserData returns the title-specific custom data of a user that the user can read and write.
func (a *ServerAPI) GetUserData(ctx context.Context, req *GetUserDataRequest, opts ...CallOption) (*GetUserDataResult, error) {
	return invoke[GetUserDataResult](ctx, a.client, serverGetUserData, req, opts)
}

// GetUserReadOnlyData returns custom data the user can read but not write.
func (a *ServerAPI) GetUserReadOnlyData(ctx context.Context, req *GetUserDataRequest, opts ...CallOption) (*GetUserDataResult, error) {
	return invoke[GetUserDataResult](ctx, a.client, serverGetUserReadOnlyData, req, opts)
}

// GetUserInternalData returns custom data the user cannot see.
func (a *ServerAPI) GetUserInternalData(ctx context.Context, req *GetUserDataRequest, opts ...CallOption) (*GetUserDataResult, error) {
	return invoke[GetUserDataResult](ctx, a.client, serverGetUserInternalData, req, opts)
}

func (a *ServerAPI) UpdateUserData(ctx context.Context, req *UpdateUserDataRequest, opts ...CallOption) (*UpdateUserDataResult, error) {
	return invoke[UpdateUserDataResult](ctx, a.client, serverUpdateUserData, req, opts)
}

func (a *ServerAPI) UpdateUserReadOnlyData(ctx context.Context, req *UpdateUserDataRequest, opts ...CallOption) (*UpdateUserDataResult, error) {
	return invoke[UpdateUserDataResult](ctx, a.client, serverUpdateUserReadOnlyData, req, opts)
}

func (a *ServerAPI) UpdateUserInternalData(ctx context.Context, req *UpdateUserInternalDataRequest, opts ...CallOption) (*UpdateUserDataResult, error) {
	return invoke[UpdateUserDataResult](ctx, a.client, serverUpdateUserInternalData, req, opts)
}

// GetTitleData returns title-wide key/value data, optionally for a label override.
func (a *ServerAPI) GetTitleData(ctx context.Context, req *GetTitleDataRequest, opts ...CallOption) (*GetTitleDataResult, error) {
	return invoke[GetTitleDataResult](ctx, a.client, serverGetTitleData, req, opts)
}

func (a *ServerAPI) GetTitleInternalData(ctx context.Context, req *GetTitleDataRequest, opts ...CallOption) (*GetTitleDataResult, error) {
	return invoke[GetTitleDataResult](ctx, a.client, serverGetTitleInternalData, req, opts)
}

func (a *ServerAPI) SetTitleData(ctx context.Context, req *SetTitleDataRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, serverSetTitleData, req, opts)
}

func (a *ServerAPI) SetTitleInternalData(ctx context.Context, req *SetTitleDataRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, serverSetTitleInternalData, req, opts)
}

// GetPlayerProfile returns the player profile fields allowed by ProfileConstraints.
func (a *ServerAPI) GetPlayerProfile(ctx context.Context, req *GetPlayerProfileRequest, opts ...CallOption) (*GetPlayerProfileResult, error) {
	return invoke[GetPlayerProfileResult](ctx, a.client, serverGetPlayerProfile, req, opts)
}

func (a *ServerAPI) GetUserAccountInfo(ctx context.Context, req *GetUserAccountInfoRequest, opts ...CallOption) (*GetUserAccountInfoResult, error) {
	return invoke[GetUserAccountInfoResult](ctx, a.client, serverGetUserAccountInfo, req, opts)
}

func (a *ServerAPI) AddPlayerTag(ctx context.Context, req *AddPlayerTagRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, serverAddPlayerTag, req, opts)
}

func (a *ServerAPI) RemovePlayerTag(ctx context.Context, req *RemovePlayerTagRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, serverRemovePlayerTag, req, opts)
}

func (a *ServerAPI) GetPlayerTags(ctx context.Context, req *GetPlayerTagsRequest, opts ...CallOption) (*GetPlayerTagsResult, error) {
	return invoke[GetPlayerTagsResult](ctx, a.client, serverGetPlayerTags, req, opts)
}

// BanUsers bans users by PlayFab id, optionally with an IP address and duration.
func (a *ServerAPI) BanUsers(ctx context.Context, req *BanUsersRequest, opts ...CallOption) (*BanUsersResult, error) {
	return invoke[BanUsersResult](ctx, a.client, serverBanUsers, req, opts)
}

func (a *ServerAPI) RevokeAllBansForUser(ctx context.Context, req *RevokeAllBansForUserRequest, opts ...CallOption) (*RevokeAllBansForUserResult, error) {
	return invoke[RevokeAllBansForUserResult](ctx, a.client, serverRevokeAllBansForUser, req, opts)
}

func (a *ServerAPI) GetPlayerStatistics(ctx context.Context, req *GetPlayerStatisticsRequest, opts ...CallOption) (*GetPlayerStatisticsResult, error) {
	return invoke[GetPlayerStatisticsResult](ctx, a.client, serverGetPlayerStatistics, req, opts)
}

// UpdatePlayerStatistics updates the values of the given statistics for a player.
func (a *ServerAPI) UpdatePlayerStatistics(ctx context.Context, req *UpdatePlayerStatisticsRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, serverUpdatePlayerStatistics, req, opts)
}

// GetLeaderboard returns a page of a statistic's leaderboard starting at StartPosition.
func (a *ServerAPI) GetLeaderboard(ctx context.Context, req *GetLeaderboardRequest, opts ...CallOption) (*GetLeaderboardResult, error) {
	return invoke[GetLeaderboardResult](ctx, a.client, serverGetLeaderboard, req, opts)
}

func (a *ServerAPI) AddUserVirtualCurrency(ctx context.Context, req *ModifyUserVirtualCurrencyRequest, opts ...CallOption) (*ModifyUserVirtualCurrencyResult, error) {
	return invoke[ModifyUserVirtualCurrencyResult](ctx, a.client, serverAddUserVirtualCurrency, req, opts)
}

// SubtractUserVirtualCurrency may leave the balance negative; check the result.
func (a *ServerAPI) SubtractUserVirtualCurrency(ctx context.Context, req *ModifyUserVirtualCurrencyRequest, opts ...CallOption) (*ModifyUserVirtualCurrencyResult, error) {
	return invoke[ModifyUserVirtualCurrencyResult](ctx, a.client, serverSubtractUserVirtualCurrency, req, opts)
}

func (a *ServerAPI) GetUserInventory(ctx context.Context, req *GetUserInventoryRequest, opts ...CallOption) (*GetUserInventoryResult, error) {
	return invoke[GetUserInventoryResult](ctx, a.client, serverGetUserInventory, req, opts)
}

// GrantItemsToUser adds catalog items to a user's inventory.
func (a *ServerAPI) GrantItemsToUser(ctx context.Context, req *GrantItemsToUserRequest, opts ...CallOption) (*GrantItemsToUserResult, error) {
	return invoke[GrantItemsToUserResult](ctx, a.client, serverGrantItemsToUser, req, opts)
}

// WritePlayerEvent writes a PlayStream event about a player.
func (a *ServerAPI) WritePlayerEvent(ctx context.Context, req *WriteServerPlayerEventRequest, opts ...CallOption) (*WriteEventResponse, error) {
	return invoke[WriteEventResponse](ctx, a.client, serverWritePlayerEvent, req, opts)
}

func (a *ServerAPI) WriteTitleEvent(ctx context.Context, req *WriteTitleEventRequest, opts ...CallOption) (*WriteEventResponse, error) {
	return invoke[WriteEventResponse](ctx, a.client, serverWriteTitleEvent, req, opts)
}

// ExecuteCloudScript runs a CloudScript function as the given player. Use DecodeFunctionResult
// to read FunctionResult.
func (a *ServerAPI) ExecuteCloudScript(ctx context.Context, req *ExecuteCloudScriptServerRequest, opts ...CallOption) (*ExecuteCloudScriptResult, error) {
	return invoke[ExecuteCloudScriptResult](ctx, a.client, serverExecuteCloudScript, req, opts)
}

// LoginWithServerCustomId signs a player in with a server-assigned custom id, creating the
// account when CreateAccount is set. When the call used the client's own credentials the
// returned session ticket and entity token are stored in them.
func (a *ServerAPI) LoginWithServerCustomId(ctx context.Context, req *LoginWithServerCustomIdRequest, opts ...CallOption) (*ServerLoginResult, error) {
	call, err := prepare(ctx, a.client, serverLoginWithServerCustomId, req, opts)
	if err != nil {
		return nil, err
	}
	resp, err := dispatch[ServerLoginResult](ctx, a.client, serverLoginWithServerCustomId, call)
	if err != nil {
		return nil, err
	}
	if call.fromHolder {
		a.client.credentials.Update(func(ac AuthenticationContext) AuthenticationContext {
			return ac.withLogin(resp)
		})
	}
	return resp, nil
}

// DecodeFunctionResult decodes the FunctionResult of res into v with the client's serializer.
func (a *ServerAPI) DecodeFunctionResult(res *ExecuteCloudScriptResult, v any) error {
	if res == nil || len(res.FunctionResult) == 0 {
		return nil
	}
	return a.client.Settings().Serializer.Unmarshal(res.FunctionResult, v)
}
