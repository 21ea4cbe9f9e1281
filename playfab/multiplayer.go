package playfab

import "context"

var (
	multiplayerCreateMatchmakingTicket              = register("Multiplayer", "CreateMatchmakingTicket", "/Match/CreateMatchmakingTicket", AuthEntityToken)
	multiplayerCreateServerMatchmakingTicket        = register("Multiplayer", "CreateServerMatchmakingTicket", "/Match/CreateServerMatchmakingTicket", AuthEntityToken)
	multiplayerGetMatchmakingTicket                 = register("Multiplayer", "GetMatchmakingTicket", "/Match/GetMatchmakingTicket", AuthEntityToken)
	multiplayerJoinMatchmakingTicket                = register("Multiplayer", "JoinMatchmakingTicket", "/Match/JoinMatchmakingTicket", AuthEntityToken)
	multiplayerCancelMatchmakingTicket              = register("Multiplayer", "CancelMatchmakingTicket", "/Match/CancelMatchmakingTicket", AuthEntityToken)
	multiplayerCancelAllMatchmakingTicketsForPlayer = register("Multiplayer", "CancelAllMatchmakingTicketsForPlayer", "/Match/CancelAllMatchmakingTicketsForPlayer", AuthEntityToken)
	multiplayerListMatchmakingTicketsForPlayer      = register("Multiplayer", "ListMatchmakingTicketsForPlayer", "/Match/ListMatchmakingTicketsForPlayer", AuthEntityToken)
	multiplayerGetMatch                             = register("Multiplayer", "GetMatch", "/Match/GetMatch", AuthEntityToken)
	multiplayerGetQueueStatistics                   = register("Multiplayer", "GetQueueStatistics", "/Match/GetQueueStatistics", AuthEntityToken)
	multiplayerRequestMultiplayerServer             = register("Multiplayer", "RequestMultiplayerServer", "/MultiplayerServer/RequestMultiplayerServer", AuthEntityToken)
	multiplayerGetMultiplayerServerDetails          = register("Multiplayer", "GetMultiplayerServerDetails", "/MultiplayerServer/GetMultiplayerServerDetails", AuthEntityToken)
	multiplayerListBuildSummariesV2                 = register("Multiplayer", "ListBuildSummariesV2", "/MultiplayerServer/ListBuildSummariesV2", AuthEntityToken)
	multiplayerListQosServersForTitle               = register("Multiplayer", "ListQosServersForTitle", "/MultiplayerServer/ListQosServersForTitle", AuthEntityToken)
	multiplayerCreateLobby                          = register("Multiplayer", "CreateLobby", "/Lobby/CreateLobby", AuthEntityToken)
	multiplayerGetLobby                             = register("Multiplayer", "GetLobby", "/Lobby/GetLobby", AuthEntityToken)
	multiplayerJoinLobby                            = register("Multiplayer", "JoinLobby", "/Lobby/JoinLobby", AuthEntityToken)
	multiplayerLeaveLobby                           = register("Multiplayer", "LeaveLobby", "/Lobby/LeaveLobby", AuthEntityToken)
	multiplayerFindLobbies                          = register("Multiplayer", "FindLobbies", "/Lobby/FindLobbies", AuthEntityToken)
	multiplayerUpdateLobby                          = register("Multiplayer", "UpdateLobby", "/Lobby/UpdateLobby", AuthEntityToken)
	multiplayerDeleteLobby                          = register("Multiplayer", "DeleteLobby", "/Lobby/DeleteLobby", AuthEntityToken)
)

// MultiplayerAPI covers matchmaking queues, hosted game servers and lobbies.
type MultiplayerAPI struct {
	client *Client
}

// CreateMatchmakingTicket creates a ticket for the calling entity in a matchmaking queue.
func (a *MultiplayerAPI) CreateMatchmakingTicket(ctx context.Context, req *CreateMatchmakingTicketRequest, opts ...CallOption) (*CreateMatchmakingTicketResult, error) {
	return invoke[CreateMatchmakingTicketResult](ctx, a.client, multiplayerCreateMatchmakingTicket, req, opts)
}

// CreateServerMatchmakingTicket creates a ticket on behalf of several players. It requires a
// title entity token.
func (a *MultiplayerAPI) CreateServerMatchmakingTicket(ctx context.Context, req *CreateServerMatchmakingTicketRequest, opts ...CallOption) (*CreateMatchmakingTicketResult, error) {
	return invoke[CreateMatchmakingTicketResult](ctx, a.client, multiplayerCreateServerMatchmakingTicket, req, opts)
}

func (a *MultiplayerAPI) GetMatchmakingTicket(ctx context.Context, req *GetMatchmakingTicketRequest, opts ...CallOption) (*GetMatchmakingTicketResult, error) {
	return invoke[GetMatchmakingTicketResult](ctx, a.client, multiplayerGetMatchmakingTicket, req, opts)
}

// JoinMatchmakingTicket adds the member to a ticket created with MembersToMatchWith.
func (a *MultiplayerAPI) JoinMatchmakingTicket(ctx context.Context, req *JoinMatchmakingTicketRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerJoinMatchmakingTicket, req, opts)
}

func (a *MultiplayerAPI) CancelMatchmakingTicket(ctx context.Context, req *CancelMatchmakingTicketRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerCancelMatchmakingTicket, req, opts)
}

func (a *MultiplayerAPI) CancelAllMatchmakingTicketsForPlayer(ctx context.Context, req *CancelAllMatchmakingTicketsForPlayerRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerCancelAllMatchmakingTicketsForPlayer, req, opts)
}

func (a *MultiplayerAPI) ListMatchmakingTicketsForPlayer(ctx context.Context, req *ListMatchmakingTicketsForPlayerRequest, opts ...CallOption) (*ListMatchmakingTicketsForPlayerResult, error) {
	return invoke[ListMatchmakingTicketsForPlayerResult](ctx, a.client, multiplayerListMatchmakingTicketsForPlayer, req, opts)
}

// GetMatch returns the members and server of a match.
func (a *MultiplayerAPI) GetMatch(ctx context.Context, req *GetMatchRequest, opts ...CallOption) (*GetMatchResult, error) {
	return invoke[GetMatchResult](ctx, a.client, multiplayerGetMatch, req, opts)
}

func (a *MultiplayerAPI) GetQueueStatistics(ctx context.Context, req *GetQueueStatisticsRequest, opts ...CallOption) (*GetQueueStatisticsResult, error) {
	return invoke[GetQueueStatisticsResult](ctx, a.client, multiplayerGetQueueStatistics, req, opts)
}

// RequestMultiplayerServer allocates a game server for a session. Repeating the call with
// the same SessionId returns the same server.
func (a *MultiplayerAPI) RequestMultiplayerServer(ctx context.Context, req *RequestMultiplayerServerRequest, opts ...CallOption) (*MultiplayerServerDetails, error) {
	return invoke[MultiplayerServerDetails](ctx, a.client, multiplayerRequestMultiplayerServer, req, opts)
}

func (a *MultiplayerAPI) GetMultiplayerServerDetails(ctx context.Context, req *GetMultiplayerServerDetailsRequest, opts ...CallOption) (*MultiplayerServerDetails, error) {
	return invoke[MultiplayerServerDetails](ctx, a.client, multiplayerGetMultiplayerServerDetails, req, opts)
}

// ListBuildSummariesV2 pages through the title's server builds.
func (a *MultiplayerAPI) ListBuildSummariesV2(ctx context.Context, req *ListBuildSummariesRequest, opts ...CallOption) (*ListBuildSummariesResponse, error) {
	return invoke[ListBuildSummariesResponse](ctx, a.client, multiplayerListBuildSummariesV2, req, opts)
}

// ListQosServersForTitle lists the quality-of-service beacons a client can ping to pick a region.
func (a *MultiplayerAPI) ListQosServersForTitle(ctx context.Context, req *ListQosServersForTitleRequest, opts ...CallOption) (*ListQosServersForTitleResponse, error) {
	return invoke[ListQosServersForTitleResponse](ctx, a.client, multiplayerListQosServersForTitle, req, opts)
}

func (a *MultiplayerAPI) CreateLobby(ctx context.Context, req *CreateLobbyRequest, opts ...CallOption) (*CreateLobbyResult, error) {
	return invoke[CreateLobbyResult](ctx, a.client, multiplayerCreateLobby, req, opts)
}

func (a *MultiplayerAPI) GetLobby(ctx context.Context, req *GetLobbyRequest, opts ...CallOption) (*GetLobbyResult, error) {
	return invoke[GetLobbyResult](ctx, a.client, multiplayerGetLobby, req, opts)
}

// JoinLobby joins a lobby by connection string.
func (a *MultiplayerAPI) JoinLobby(ctx context.Context, req *JoinLobbyRequest, opts ...CallOption) (*JoinLobbyResult, error) {
	return invoke[JoinLobbyResult](ctx, a.client, multiplayerJoinLobby, req, opts)
}

func (a *MultiplayerAPI) LeaveLobby(ctx context.Context, req *LeaveLobbyRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerLeaveLobby, req, opts)
}

// FindLobbies searches lobbies by their search data.
func (a *MultiplayerAPI) FindLobbies(ctx context.Context, req *FindLobbiesRequest, opts ...CallOption) (*FindLobbiesResult, error) {
	return invoke[FindLobbiesResult](ctx, a.client, multiplayerFindLobbies, req, opts)
}

// UpdateLobby changes lobby or member data. Only the owner may change lobby data.
func (a *MultiplayerAPI) UpdateLobby(ctx context.Context, req *UpdateLobbyRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerUpdateLobby, req, opts)
}

func (a *MultiplayerAPI) DeleteLobby(ctx context.Context, req *DeleteLobbyRequest, opts ...CallOption) (*EmptyResponse, error) {
	return invoke[EmptyResponse](ctx, a.client, multiplayerDeleteLobby, req, opts)
}
