package playfab

import (
	"encoding/json"
	"time"
)

// GetPlayerCombinedInfoRequestParams selects what a login returns in InfoResultPayload.
type GetPlayerCombinedInfoRequestParams struct {
	GetPlayerProfile       bool     `json:"GetPlayerProfile"`
	GetPlayerStatistics    bool     `json:"GetPlayerStatistics"`
	GetTitleData           bool     `json:"GetTitleData"`
	GetUserAccountInfo     bool     `json:"GetUserAccountInfo"`
	GetUserData            bool     `json:"GetUserData"`
	GetUserInventory       bool     `json:"GetUserInventory"`
	GetUserReadOnlyData    bool     `json:"GetUserReadOnlyData"`
	GetUserVirtualCurrency bool     `json:"GetUserVirtualCurrency"`
	PlayerStatisticNames   []string `json:"PlayerStatisticNames,omitempty"`
	TitleDataKeys          []string `json:"TitleDataKeys,omitempty"`
	UserDataKeys           []string `json:"UserDataKeys,omitempty"`
	UserReadOnlyDataKeys   []string `json:"UserReadOnlyDataKeys,omitempty"`
}

type GetPlayerCombinedInfoResultPayload struct {
	AccountInfo         *UserAccountInfo          `json:"AccountInfo,omitempty"`
	PlayerProfile       *PlayerProfileModel       `json:"PlayerProfile,omitempty"`
	PlayerStatistics    []StatisticValue          `json:"PlayerStatistics,omitempty"`
	TitleData           map[string]string         `json:"TitleData,omitempty"`
	UserData            map[string]UserDataRecord `json:"UserData,omitempty"`
	UserDataVersion     uint32                    `json:"UserDataVersion"`
	UserInventory       []ItemInstance            `json:"UserInventory,omitempty"`
	UserReadOnlyData    map[string]UserDataRecord `json:"UserReadOnlyData,omitempty"`
	UserVirtualCurrency map[string]int32          `json:"UserVirtualCurrency,omitempty"`
}

type LoginWithServerCustomIdRequest struct {
	RequestBase
	CreateAccount         *bool                               `json:"CreateAccount,omitempty"`
	InfoRequestParameters *GetPlayerCombinedInfoRequestParams `json:"InfoRequestParameters,omitempty"`
	PlayerSecret          string                              `json:"PlayerSecret,omitempty"`
	ServerCustomId        string                              `json:"ServerCustomId" validate:"required"`
}

type UserSettings struct {
	GatherDeviceInfo bool `json:"GatherDeviceInfo"`
	GatherFocusInfo  bool `json:"GatherFocusInfo"`
	NeedsAttribution bool `json:"NeedsAttribution"`
}

type ServerLoginResult struct {
	EntityToken       *EntityTokenResponse                `json:"EntityToken,omitempty"`
	InfoResultPayload *GetPlayerCombinedInfoResultPayload `json:"InfoResultPayload,omitempty"`
	LastLoginTime     *time.Time                          `json:"LastLoginTime,omitempty"`
	NewlyCreated      bool                                `json:"NewlyCreated"`
	PlayFabId         string                              `json:"PlayFabId,omitempty"`
	SessionTicket     string                              `json:"SessionTicket,omitempty"`
	SettingsForUser   *UserSettings                       `json:"SettingsForUser,omitempty"`
}

type AuthenticateSessionTicketRequest struct {
	RequestBase
	SessionTicket string `json:"SessionTicket" validate:"required"`
}

type AuthenticateSessionTicketResult struct {
	IsSessionTicketExpired *bool            `json:"IsSessionTicketExpired,omitempty"`
	UserInfo               *UserAccountInfo `json:"UserInfo,omitempty"`
}

type GetUserDataRequest struct {
	RequestBase
	// IfChangedFromDataVersion skips the data when it has not changed since that version.
	IfChangedFromDataVersion *uint32  `json:"IfChangedFromDataVersion,omitempty"`
	Keys                     []string `json:"Keys,omitempty"`
	PlayFabId                string   `json:"PlayFabId" validate:"required"`
}

type GetUserDataResult struct {
	Data        map[string]UserDataRecord `json:"Data,omitempty"`
	DataVersion uint32                    `json:"DataVersion"`
	PlayFabId   string                    `json:"PlayFabId,omitempty"`
}

type UpdateUserDataRequest struct {
	RequestBase
	Data         map[string]string `json:"Data,omitempty"`
	KeysToRemove []string          `json:"KeysToRemove,omitempty"`
	Permission   string            `json:"Permission,omitempty"`
	PlayFabId    string            `json:"PlayFabId" validate:"required"`
}

type UpdateUserInternalDataRequest struct {
	RequestBase
	Data         map[string]string `json:"Data,omitempty"`
	KeysToRemove []string          `json:"KeysToRemove,omitempty"`
	PlayFabId    string            `json:"PlayFabId" validate:"required"`
}

type UpdateUserDataResult struct {
	DataVersion uint32 `json:"DataVersion"`
}

type GetTitleDataRequest struct {
	RequestBase
	Keys          []string `json:"Keys,omitempty"`
	OverrideLabel string   `json:"OverrideLabel,omitempty"`
}

type GetTitleDataResult struct {
	Data map[string]string `json:"Data,omitempty"`
}

// SetTitleDataRequest removes the key when Value is empty.
type SetTitleDataRequest struct {
	RequestBase
	Key   string `json:"Key" validate:"required"`
	Value string `json:"Value,omitempty"`
}

type PlayerProfileViewConstraints struct {
	ShowAvatarUrl   bool `json:"ShowAvatarUrl"`
	ShowBannedUntil bool `json:"ShowBannedUntil"`
	ShowCreated     bool `json:"ShowCreated"`
	ShowDisplayName bool `json:"ShowDisplayName"`
	ShowLastLogin   bool `json:"ShowLastLogin"`
	ShowOrigination bool `json:"ShowOrigination"`
	ShowStatistics  bool `json:"ShowStatistics"`
	ShowTags        bool `json:"ShowTags"`
}

type GetPlayerProfileRequest struct {
	RequestBase
	PlayFabId          string                        `json:"PlayFabId" validate:"required"`
	ProfileConstraints *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
}

type GetPlayerProfileResult struct {
	PlayerProfile *PlayerProfileModel `json:"PlayerProfile,omitempty"`
}

type GetUserAccountInfoRequest struct {
	RequestBase
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type GetUserAccountInfoResult struct {
	UserInfo *UserAccountInfo `json:"UserInfo,omitempty"`
}

type AddPlayerTagRequest struct {
	RequestBase
	PlayFabId string `json:"PlayFabId" validate:"required"`
	TagName   string `json:"TagName" validate:"required"`
}

type RemovePlayerTagRequest struct {
	RequestBase
	PlayFabId string `json:"PlayFabId" validate:"required"`
	TagName   string `json:"TagName" validate:"required"`
}

type GetPlayerTagsRequest struct {
	RequestBase
	Namespace string `json:"Namespace,omitempty"`
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type GetPlayerTagsResult struct {
	PlayFabId string   `json:"PlayFabId,omitempty"`
	Tags      []string `json:"Tags,omitempty"`
}

type BanRequest struct {
	// DurationInHours leaves the ban permanent when nil.
	DurationInHours *uint32 `json:"DurationInHours,omitempty"`
	IPAddress       string  `json:"IPAddress,omitempty"`
	PlayFabId       string  `json:"PlayFabId" validate:"required"`
	Reason          string  `json:"Reason,omitempty"`
}

type BanUsersRequest struct {
	RequestBase
	Bans []BanRequest `json:"Bans" validate:"required,dive"`
}

type BanInfo struct {
	Active    bool       `json:"Active"`
	BanId     string     `json:"BanId,omitempty"`
	Created   *time.Time `json:"Created,omitempty"`
	Expires   *time.Time `json:"Expires,omitempty"`
	IPAddress string     `json:"IPAddress,omitempty"`
	PlayFabId string     `json:"PlayFabId,omitempty"`
	Reason    string     `json:"Reason,omitempty"`
}

type BanUsersResult struct {
	BanData []BanInfo `json:"BanData,omitempty"`
}

type RevokeAllBansForUserRequest struct {
	RequestBase
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type RevokeAllBansForUserResult struct {
	BanData []BanInfo `json:"BanData,omitempty"`
}

type StatisticNameVersion struct {
	StatisticName string `json:"StatisticName" validate:"required"`
	Version       uint32 `json:"Version"`
}

type GetPlayerStatisticsRequest struct {
	RequestBase
	PlayFabId             string                 `json:"PlayFabId" validate:"required"`
	StatisticNames        []string               `json:"StatisticNames,omitempty"`
	StatisticNameVersions []StatisticNameVersion `json:"StatisticNameVersions,omitempty" validate:"omitempty,dive"`
}

type GetPlayerStatisticsResult struct {
	PlayFabId  string           `json:"PlayFabId,omitempty"`
	Statistics []StatisticValue `json:"Statistics,omitempty"`
}

type StatisticUpdate struct {
	StatisticName string  `json:"StatisticName" validate:"required"`
	Value         int32   `json:"Value"`
	Version       *uint32 `json:"Version,omitempty"`
}

type UpdatePlayerStatisticsRequest struct {
	RequestBase
	// ForceUpdate lets a server bypass the statistic's aggregation method.
	ForceUpdate *bool             `json:"ForceUpdate,omitempty"`
	PlayFabId   string            `json:"PlayFabId" validate:"required"`
	Statistics  []StatisticUpdate `json:"Statistics" validate:"required,dive"`
}

type GetLeaderboardRequest struct {
	RequestBase
	MaxResultsCount    int32                         `json:"MaxResultsCount" validate:"required,min=1,max=100"`
	ProfileConstraints *PlayerProfileViewConstraints `json:"ProfileConstraints,omitempty"`
	StartPosition      *int32                        `json:"StartPosition" validate:"required,min=0"`
	StatisticName      string                        `json:"StatisticName" validate:"required"`
	Version            *int32                        `json:"Version,omitempty"`
}

type PlayerLeaderboardEntry struct {
	DisplayName string              `json:"DisplayName,omitempty"`
	PlayFabId   string              `json:"PlayFabId,omitempty"`
	Position    int32               `json:"Position"`
	Profile     *PlayerProfileModel `json:"Profile,omitempty"`
	StatValue   int32               `json:"StatValue"`
}

type GetLeaderboardResult struct {
	Leaderboard []PlayerLeaderboardEntry `json:"Leaderboard,omitempty"`
	NextReset   *time.Time               `json:"NextReset,omitempty"`
	Version     int32                    `json:"Version"`
}

// ModifyUserVirtualCurrencyRequest is shared by AddUserVirtualCurrency and SubtractUserVirtualCurrency.
type ModifyUserVirtualCurrencyRequest struct {
	RequestBase
	Amount          *int32 `json:"Amount" validate:"required,min=0"`
	PlayFabId       string `json:"PlayFabId" validate:"required"`
	VirtualCurrency string `json:"VirtualCurrency" validate:"required,len=2"`
}

type ModifyUserVirtualCurrencyResult struct {
	Balance         int32  `json:"Balance"`
	BalanceChange   int32  `json:"BalanceChange"`
	PlayFabId       string `json:"PlayFabId,omitempty"`
	VirtualCurrency string `json:"VirtualCurrency,omitempty"`
}

type GetUserInventoryRequest struct {
	RequestBase
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type GetUserInventoryResult struct {
	Inventory                    []ItemInstance                         `json:"Inventory,omitempty"`
	PlayFabId                    string                                 `json:"PlayFabId,omitempty"`
	VirtualCurrency              map[string]int32                       `json:"VirtualCurrency,omitempty"`
	VirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"VirtualCurrencyRechargeTimes,omitempty"`
}

type GrantItemsToUserRequest struct {
	RequestBase
	Annotation     string   `json:"Annotation,omitempty"`
	CatalogVersion string   `json:"CatalogVersion,omitempty"`
	ItemIds        []string `json:"ItemIds" validate:"required"`
	PlayFabId      string   `json:"PlayFabId" validate:"required"`
}

type GrantedItemInstance struct {
	ItemInstance
	CharacterId string `json:"CharacterId,omitempty"`
	PlayFabId   string `json:"PlayFabId,omitempty"`
	Result      bool   `json:"Result"`
}

type GrantItemsToUserResult struct {
	ItemGrantResults []GrantedItemInstance `json:"ItemGrantResults,omitempty"`
}

type WriteServerPlayerEventRequest struct {
	RequestBase
	Body      map[string]any `json:"Body,omitempty"`
	EventName string         `json:"EventName" validate:"required,min=1,max=64"`
	PlayFabId string         `json:"PlayFabId" validate:"required"`
	Timestamp *time.Time     `json:"Timestamp,omitempty"`
}

type WriteTitleEventRequest struct {
	RequestBase
	Body      map[string]any `json:"Body,omitempty"`
	EventName string         `json:"EventName" validate:"required,min=1,max=64"`
	Timestamp *time.Time     `json:"Timestamp,omitempty"`
}

type WriteEventResponse struct {
	EventId string `json:"EventId,omitempty"`
}

// CloudScript revision selection.
const (
	RevisionLive     = "Live"
	RevisionLatest   = "Latest"
	RevisionSpecific = "Specific"
)

type ExecuteCloudScriptServerRequest struct {
	RequestBase
	FunctionName            string `json:"FunctionName" validate:"required"`
	FunctionParameter       any    `json:"FunctionParameter,omitempty"`
	GeneratePlayStreamEvent *bool  `json:"GeneratePlayStreamEvent,omitempty"`
	PlayFabId               string `json:"PlayFabId" validate:"required"`
	RevisionSelection       string `json:"RevisionSelection,omitempty"`
	SpecificRevision        *int32 `json:"SpecificRevision,omitempty" validate:"required_if=RevisionSelection Specific"`
}

type LogStatement struct {
	Data    json.RawMessage `json:"Data,omitempty"`
	Level   string          `json:"Level,omitempty"`
	Message string          `json:"Message,omitempty"`
}

type ScriptExecutionError struct {
	Error      string `json:"Error,omitempty"`
	Message    string `json:"Message,omitempty"`
	StackTrace string `json:"StackTrace,omitempty"`
}

type ExecuteCloudScriptResult struct {
	APIRequestsIssued      int32                 `json:"APIRequestsIssued"`
	Error                  *ScriptExecutionError `json:"Error,omitempty"`
	ExecutionTimeSeconds   float64               `json:"ExecutionTimeSeconds"`
	FunctionName           string                `json:"FunctionName,omitempty"`
	FunctionResult         json.RawMessage       `json:"FunctionResult,omitempty"`
	FunctionResultTooLarge *bool                 `json:"FunctionResultTooLarge,omitempty"`
	HttpRequestsIssued     int32                 `json:"HttpRequestsIssued"`
	Logs                   []LogStatement        `json:"Logs,omitempty"`
	LogsTooLarge           *bool                 `json:"LogsTooLarge,omitempty"`
	MemoryConsumedBytes    uint32                `json:"MemoryConsumedBytes"`
	ProcessorTimeSeconds   float64               `json:"ProcessorTimeSeconds"`
	Revision               int32                 `json:"Revision"`
}
