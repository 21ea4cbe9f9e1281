package playfab

import (
	"encoding/json"
	"time"
)

// Matchmaking ticket states.
const (
	TicketStatusWaitingForPlayers = "WaitingForPlayers"
	TicketStatusWaitingForMatch   = "WaitingForMatch"
	TicketStatusWaitingForServer  = "WaitingForServer"
	TicketStatusCanceled          = "Canceled"
	TicketStatusMatched           = "Matched"
)

type MatchmakingPlayerAttributes struct {
	// DataObject is sent as a JSON object; EscapedDataObject as an escaped JSON string.
	DataObject        json.RawMessage `json:"DataObject,omitempty"`
	EscapedDataObject string          `json:"EscapedDataObject,omitempty"`
}

type MatchmakingPlayer struct {
	Attributes *MatchmakingPlayerAttributes `json:"Attributes,omitempty"`
	Entity     EntityKey                    `json:"Entity" validate:"required"`
}

type MatchmakingPlayerWithTeamAssignment struct {
	Attributes *MatchmakingPlayerAttributes `json:"Attributes,omitempty"`
	Entity     EntityKey                    `json:"Entity"`
	TeamId     string                       `json:"TeamId,omitempty"`
}

type CreateMatchmakingTicketRequest struct {
	RequestBase
	Creator            MatchmakingPlayer `json:"Creator" validate:"required"`
	GiveUpAfterSeconds int32             `json:"GiveUpAfterSeconds" validate:"required,min=1,max=3600"`
	MembersToMatchWith []EntityKey       `json:"MembersToMatchWith,omitempty" validate:"omitempty,dive"`
	QueueName          string            `json:"QueueName" validate:"required"`
}

type CreateMatchmakingTicketResult struct {
	TicketId string `json:"TicketId,omitempty"`
}

type CreateServerMatchmakingTicketRequest struct {
	RequestBase
	GiveUpAfterSeconds int32               `json:"GiveUpAfterSeconds" validate:"required,min=1,max=3600"`
	Members            []MatchmakingPlayer `json:"Members" validate:"required,dive"`
	QueueName          string              `json:"QueueName" validate:"required"`
}

type GetMatchmakingTicketRequest struct {
	RequestBase
	EscapeObject *bool  `json:"EscapeObject,omitempty"`
	QueueName    string `json:"QueueName" validate:"required"`
	TicketId     string `json:"TicketId" validate:"required"`
}

type GetMatchmakingTicketResult struct {
	CancellationReasonString string                                `json:"CancellationReasonString,omitempty"`
	ChangeNumber             uint32                                `json:"ChangeNumber"`
	Created                  time.Time                             `json:"Created"`
	Creator                  EntityKey                             `json:"Creator"`
	GiveUpAfterSeconds       int32                                 `json:"GiveUpAfterSeconds"`
	MatchId                  string                                `json:"MatchId,omitempty"`
	Members                  []MatchmakingPlayerWithTeamAssignment `json:"Members,omitempty"`
	MembersToMatchWith       []EntityKey                           `json:"MembersToMatchWith,omitempty"`
	QueueName                string                                `json:"QueueName,omitempty"`
	Status                   string                                `json:"Status,omitempty"`
	TicketId                 string                                `json:"TicketId,omitempty"`
}

type JoinMatchmakingTicketRequest struct {
	RequestBase
	Member    MatchmakingPlayer `json:"Member" validate:"required"`
	QueueName string            `json:"QueueName" validate:"required"`
	TicketId  string            `json:"TicketId" validate:"required"`
}

type CancelMatchmakingTicketRequest struct {
	RequestBase
	QueueName string `json:"QueueName" validate:"required"`
	TicketId  string `json:"TicketId" validate:"required"`
}

type CancelAllMatchmakingTicketsForPlayerRequest struct {
	RequestBase
	Entity    *EntityKey `json:"Entity,omitempty"`
	QueueName string     `json:"QueueName" validate:"required"`
}

type ListMatchmakingTicketsForPlayerRequest struct {
	RequestBase
	Entity    *EntityKey `json:"Entity,omitempty"`
	QueueName string     `json:"QueueName" validate:"required"`
}

type ListMatchmakingTicketsForPlayerResult struct {
	TicketIds []string `json:"TicketIds,omitempty"`
}

type Port struct {
	Name     string `json:"Name,omitempty"`
	Num      int32  `json:"Num"`
	Protocol string `json:"Protocol,omitempty"`
}

type ServerDetails struct {
	Fqdn        string `json:"Fqdn,omitempty"`
	IPV4Address string `json:"IPV4Address,omitempty"`
	Ports       []Port `json:"Ports,omitempty"`
	Region      string `json:"Region,omitempty"`
}

type GetMatchRequest struct {
	RequestBase
	EscapeObject           *bool  `json:"EscapeObject,omitempty"`
	MatchId                string `json:"MatchId" validate:"required"`
	QueueName              string `json:"QueueName" validate:"required"`
	ReturnMemberAttributes *bool  `json:"ReturnMemberAttributes,omitempty"`
}

type GetMatchResult struct {
	ArrangementString string                                `json:"ArrangementString,omitempty"`
	MatchId           string                                `json:"MatchId,omitempty"`
	Members           []MatchmakingPlayerWithTeamAssignment `json:"Members,omitempty"`
	RegionPreferences []string                              `json:"RegionPreferences,omitempty"`
	ServerDetails     *ServerDetails                        `json:"ServerDetails,omitempty"`
}

type GetQueueStatisticsRequest struct {
	RequestBase
	QueueName string `json:"QueueName" validate:"required"`
}

type Statistics struct {
	Average      float64 `json:"Average"`
	Percentile50 float64 `json:"Percentile50"`
	Percentile90 float64 `json:"Percentile90"`
	Percentile99 float64 `json:"Percentile99"`
}

type GetQueueStatisticsResult struct {
	NumberOfPlayersMatching        *uint32     `json:"NumberOfPlayersMatching,omitempty"`
	TimeToMatchStatisticsInSeconds *Statistics `json:"TimeToMatchStatisticsInSeconds,omitempty"`
}

type BuildAliasParams struct {
	AliasId string `json:"AliasId" validate:"required"`
}

type ConnectedPlayer struct {
	PlayerId string `json:"PlayerId,omitempty"`
}

type PublicIpAddress struct {
	FQDN        string `json:"FQDN,omitempty"`
	IpAddress   string `json:"IpAddress,omitempty"`
	RoutingType string `json:"RoutingType,omitempty"`
}

// MultiplayerServerDetails describes an allocated game server session.
type MultiplayerServerDetails struct {
	BuildId                 string            `json:"BuildId,omitempty"`
	ConnectedPlayers        []ConnectedPlayer `json:"ConnectedPlayers,omitempty"`
	FQDN                    string            `json:"FQDN,omitempty"`
	IPV4Address             string            `json:"IPV4Address,omitempty"`
	LastStateTransitionTime *time.Time        `json:"LastStateTransitionTime,omitempty"`
	Ports                   []Port            `json:"Ports,omitempty"`
	PublicIPV4Addresses     []PublicIpAddress `json:"PublicIPV4Addresses,omitempty"`
	Region                  string            `json:"Region,omitempty"`
	ServerId                string            `json:"ServerId,omitempty"`
	SessionId               string            `json:"SessionId,omitempty"`
	State                   string            `json:"State,omitempty"`
	VmId                    string            `json:"VmId,omitempty"`
}

// RequestMultiplayerServerRequest needs either BuildId or BuildAliasParams.
type RequestMultiplayerServerRequest struct {
	RequestBase
	BuildAliasParams *BuildAliasParams `json:"BuildAliasParams,omitempty" validate:"required_without=BuildId"`
	BuildId          string            `json:"BuildId,omitempty"`
	InitialPlayers   []string          `json:"InitialPlayers,omitempty"`
	PreferredRegions []string          `json:"PreferredRegions" validate:"required"`
	SessionCookie    string            `json:"SessionCookie,omitempty"`
	SessionId        string            `json:"SessionId" validate:"required"`
}

type GetMultiplayerServerDetailsRequest struct {
	RequestBase
	BuildId   string `json:"BuildId,omitempty"`
	Region    string `json:"Region,omitempty"`
	SessionId string `json:"SessionId" validate:"required"`
}

type CurrentServerStats struct {
	Active     int32 `json:"Active"`
	Propping   int32 `json:"Propping"`
	StandingBy int32 `json:"StandingBy"`
	Total      int32 `json:"Total"`
}

type BuildRegion struct {
	CurrentServerStats *CurrentServerStats `json:"CurrentServerStats,omitempty"`
	MaxServers         int32               `json:"MaxServers"`
	Region             string              `json:"Region,omitempty"`
	StandbyServers     int32               `json:"StandbyServers"`
	Status             string              `json:"Status,omitempty"`
}

type BuildSummary struct {
	BuildId              string            `json:"BuildId,omitempty"`
	BuildName            string            `json:"BuildName,omitempty"`
	CreationTime         *time.Time        `json:"CreationTime,omitempty"`
	Metadata             map[string]string `json:"Metadata,omitempty"`
	RegionConfigurations []BuildRegion     `json:"RegionConfigurations,omitempty"`
}

type ListBuildSummariesRequest struct {
	RequestBase
	PageSize  *int32 `json:"PageSize,omitempty" validate:"omitempty,min=10,max=50"`
	SkipToken string `json:"SkipToken,omitempty"`
}

type ListBuildSummariesResponse struct {
	BuildSummaries []BuildSummary `json:"BuildSummaries,omitempty"`
	PageSize       int32          `json:"PageSize"`
	SkipToken      string         `json:"SkipToken,omitempty"`
}

type ListQosServersForTitleRequest struct {
	RequestBase
	IncludeAllRegions *bool  `json:"IncludeAllRegions,omitempty"`
	RoutingPreference string `json:"RoutingPreference,omitempty"`
}

type QosServer struct {
	Region    string `json:"Region,omitempty"`
	ServerUrl string `json:"ServerUrl,omitempty"`
}

type ListQosServersForTitleResponse struct {
	PageSize   int32       `json:"PageSize"`
	QosServers []QosServer `json:"QosServers,omitempty"`
	SkipToken  string      `json:"SkipToken,omitempty"`
}

// Lobby access policies.
const (
	AccessPolicyPublic  = "Public"
	AccessPolicyFriends = "Friends"
	AccessPolicyPrivate = "Private"
)

type Member struct {
	MemberData             map[string]string `json:"MemberData,omitempty"`
	MemberEntity           *EntityKey        `json:"MemberEntity,omitempty"`
	PubSubConnectionHandle string            `json:"PubSubConnectionHandle,omitempty"`
}

type CreateLobbyRequest struct {
	RequestBase
	AccessPolicy                string            `json:"AccessPolicy,omitempty"`
	LobbyData                   map[string]string `json:"LobbyData,omitempty"`
	MaxPlayers                  uint32            `json:"MaxPlayers" validate:"required,min=1,max=128"`
	Members                     []Member          `json:"Members,omitempty"`
	Owner                       *EntityKey        `json:"Owner" validate:"required"`
	OwnerMigrationPolicy        string            `json:"OwnerMigrationPolicy,omitempty"`
	RestrictInvitesToLobbyOwner *bool             `json:"RestrictInvitesToLobbyOwner,omitempty"`
	SearchData                  map[string]string `json:"SearchData,omitempty"`
	UseConnections              *bool             `json:"UseConnections,omitempty"`
}

type CreateLobbyResult struct {
	ConnectionString string `json:"ConnectionString,omitempty"`
	LobbyId          string `json:"LobbyId,omitempty"`
}

type Lobby struct {
	AccessPolicy           string            `json:"AccessPolicy,omitempty"`
	ChangeNumber           uint32            `json:"ChangeNumber"`
	ConnectionString       string            `json:"ConnectionString,omitempty"`
	LobbyData              map[string]string `json:"LobbyData,omitempty"`
	LobbyId                string            `json:"LobbyId,omitempty"`
	MaxPlayers             uint32            `json:"MaxPlayers"`
	Members                []Member          `json:"Members,omitempty"`
	MembershipLock         string            `json:"MembershipLock,omitempty"`
	Owner                  *EntityKey        `json:"Owner,omitempty"`
	OwnerMigrationPolicy   string            `json:"OwnerMigrationPolicy,omitempty"`
	PubSubConnectionHandle string            `json:"PubSubConnectionHandle,omitempty"`
	SearchData             map[string]string `json:"SearchData,omitempty"`
	UseConnections         bool              `json:"UseConnections"`
}

type GetLobbyRequest struct {
	RequestBase
	LobbyId string `json:"LobbyId" validate:"required"`
}

type GetLobbyResult struct {
	Lobby *Lobby `json:"Lobby,omitempty"`
}

type JoinLobbyRequest struct {
	RequestBase
	ConnectionString string            `json:"ConnectionString" validate:"required"`
	MemberData       map[string]string `json:"MemberData,omitempty"`
	MemberEntity     *EntityKey        `json:"MemberEntity" validate:"required"`
}

type JoinLobbyResult struct {
	LobbyId string `json:"LobbyId,omitempty"`
}

type LeaveLobbyRequest struct {
	RequestBase
	LobbyId      string     `json:"LobbyId" validate:"required"`
	MemberEntity *EntityKey `json:"MemberEntity" validate:"required"`
}

type PaginationRequest struct {
	ContinuationToken string  `json:"ContinuationToken,omitempty"`
	PageSizeRequested *uint32 `json:"PageSizeRequested,omitempty"`
}

type PaginationResponse struct {
	ContinuationToken      string  `json:"ContinuationToken,omitempty"`
	TotalMatchedLobbyCount *uint32 `json:"TotalMatchedLobbyCount,omitempty"`
}

// FindLobbiesRequest filters on search data, e.g. Filter: "string_key1 eq 'coop'".
type FindLobbiesRequest struct {
	RequestBase
	Filter     string             `json:"Filter,omitempty"`
	Pagination *PaginationRequest `json:"Pagination,omitempty"`
	Sort       string             `json:"Sort,omitempty"`
}

type LobbySummary struct {
	ConnectionString string            `json:"ConnectionString,omitempty"`
	CurrentPlayers   uint32            `json:"CurrentPlayers"`
	LobbyId          string            `json:"LobbyId,omitempty"`
	MaxPlayers       uint32            `json:"MaxPlayers"`
	MembershipLock   string            `json:"MembershipLock,omitempty"`
	Owner            *EntityKey        `json:"Owner,omitempty"`
	SearchData       map[string]string `json:"SearchData,omitempty"`
}

type FindLobbiesResult struct {
	Lobbies    []LobbySummary      `json:"Lobbies,omitempty"`
	Pagination *PaginationResponse `json:"Pagination,omitempty"`
}

type UpdateLobbyRequest struct {
	RequestBase
	AccessPolicy       string            `json:"AccessPolicy,omitempty"`
	LobbyData          map[string]string `json:"LobbyData,omitempty"`
	LobbyDataToDelete  []string          `json:"LobbyDataToDelete,omitempty"`
	LobbyId            string            `json:"LobbyId" validate:"required"`
	MaxPlayers         *uint32           `json:"MaxPlayers,omitempty"`
	MemberData         map[string]string `json:"MemberData,omitempty"`
	MemberDataToDelete []string          `json:"MemberDataToDelete,omitempty"`
	MemberEntity       *EntityKey        `json:"MemberEntity,omitempty"`
	MembershipLock     string            `json:"MembershipLock,omitempty"`
	Owner              *EntityKey        `json:"Owner,omitempty"`
	SearchData         map[string]string `json:"SearchData,omitempty"`
	SearchDataToDelete []string          `json:"SearchDataToDelete,omitempty"`
}

type DeleteLobbyRequest struct {
	RequestBase
	LobbyId string `json:"LobbyId" validate:"required"`
}
