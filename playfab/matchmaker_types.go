package playfab

// Regions accepted by the legacy matchmaker.
const (
	RegionUSCentral = "USCentral"
	RegionUSEast    = "USEast"
	RegionEUWest    = "EUWest"
	RegionSingapore = "Singapore"
	RegionJapan     = "Japan"
	RegionBrazil    = "Brazil"
	RegionAustralia = "Australia"
)

type AuthUserRequest struct {
	RequestBase
	// AuthorizationTicket is the session ticket the client received from the matchmaker.
	AuthorizationTicket string `json:"AuthorizationTicket" validate:"required"`
}

type AuthUserResponse struct {
	Authorized bool   `json:"Authorized"`
	PlayFabId  string `json:"PlayFabId,omitempty"`
}

type PlayerJoinedRequest struct {
	RequestBase
	LobbyId   string `json:"LobbyId" validate:"required"`
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type PlayerLeftRequest struct {
	RequestBase
	LobbyId   string `json:"LobbyId" validate:"required"`
	PlayFabId string `json:"PlayFabId" validate:"required"`
}

type StartGameRequest struct {
	RequestBase
	Build                           string `json:"Build" validate:"required"`
	CustomCommandLineData           string `json:"CustomCommandLineData,omitempty"`
	ExternalMatchmakerEventEndpoint string `json:"ExternalMatchmakerEventEndpoint" validate:"required"`
	GameMode                        string `json:"GameMode" validate:"required"`
	Region                          string `json:"Region" validate:"required"`
}

type StartGameResponse struct {
	GameID              string `json:"GameID,omitempty"`
	ServerIPV4Address   string `json:"ServerIPV4Address,omitempty"`
	ServerIPV6Address   string `json:"ServerIPV6Address,omitempty"`
	ServerPort          uint32 `json:"ServerPort"`
	ServerPublicDNSName string `json:"ServerPublicDNSName,omitempty"`
}

type UserInfoRequest struct {
	RequestBase
	MinCatalogVersion *int32 `json:"MinCatalogVersion,omitempty"`
	PlayFabId         string `json:"PlayFabId" validate:"required"`
}

type UserInfoResponse struct {
	Inventory                    []ItemInstance                         `json:"Inventory,omitempty"`
	IsDeveloper                  bool                                   `json:"IsDeveloper"`
	PlayFabId                    string                                 `json:"PlayFabId,omitempty"`
	SteamId                      string                                 `json:"SteamId,omitempty"`
	TitleDisplayName             string                                 `json:"TitleDisplayName,omitempty"`
	Username                     string                                 `json:"Username,omitempty"`
	VirtualCurrency              map[string]int32                       `json:"VirtualCurrency,omitempty"`
	VirtualCurrencyRechargeTimes map[string]VirtualCurrencyRechargeTime `json:"VirtualCurrencyRechargeTimes,omitempty"`
}
