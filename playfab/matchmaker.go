package playfab

import "context"

var (
	matchmakerAuthUser     = register("Matchmaker", "AuthUser", "/Matchmaker/AuthUser", AuthDevSecretKey)
	matchmakerPlayerJoined = register("Matchmaker", "PlayerJoined", "/Matchmaker/PlayerJoined", AuthDevSecretKey)
	matchmakerPlayerLeft   = register("Matchmaker", "PlayerLeft", "/Matchmaker/PlayerLeft", AuthDevSecretKey)
	matchmakerStartGame    = register("Matchmaker", "StartGame", "/Matchmaker/StartGame", AuthDevSecretKey)
	matchmakerUserInfo     = register("Matchmaker", "UserInfo", "/Matchmaker/UserInfo", AuthDevSecretKey)
)

// MatchmakerAPI is the legacy server-side matchmaker surface. Calls use the developer secret key.
type MatchmakerAPI struct {
	client *Client
}

// AuthUser validates a user with the matchmaker, confirming the client may join the server.
func (a *MatchmakerAPI) AuthUser(ctx context.Context, req *AuthUserRequest, opts ...CallOption) (*AuthUserResponse, error) {
	return invoke[AuthUserResponse](ctx, a.client, matchmakerAuthUser, req, opts)
}

// PlayerJoined informs the matchmaker that a user has joined a game server instance.
func (a *MatchmakerAPI) PlayerJoined(ctx context.Context, req *PlayerJoinedRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, matchmakerPlayerJoined, req, opts)
}

func (a *MatchmakerAPI) PlayerLeft(ctx context.Context, req *PlayerLeftRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, matchmakerPlayerLeft, req, opts)
}

// StartGame instructs the matchmaker to start a new game server instance.
func (a *MatchmakerAPI) StartGame(ctx context.Context, req *StartGameRequest, opts ...CallOption) (*StartGameResponse, error) {
	return invoke[StartGameResponse](ctx, a.client, matchmakerStartGame, req, opts)
}

// UserInfo returns the user's inventory and virtual currency for use by the game server.
func (a *MatchmakerAPI) UserInfo(ctx context.Context, req *UserInfoRequest, opts ...CallOption) (*UserInfoResponse, error) {
	return invoke[UserInfoResponse](ctx, a.client, matchmakerUserInfo, req, opts)
}
