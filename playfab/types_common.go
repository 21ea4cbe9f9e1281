package playfab

import "time"

// RequestBase is embedded in every request record.
type RequestBase struct {
	// AuthenticationContext, when set, is used instead of the client's credentials.
	AuthenticationContext *AuthenticationContext `json:"-" validate:"-"`
	// CustomTags are forwarded to PlayStream and the request log.
	CustomTags map[string]string `json:"CustomTags,omitempty"`
}

func (r *RequestBase) attachedContext() *AuthenticationContext {
	return r.AuthenticationContext
}

// EmptyResponse is returned by endpoints whose response carries no fields.
type EmptyResponse struct{}

// EntityKey identifies an entity such as a title, a title player account or a group.
type EntityKey struct {
	Id   string `json:"Id" validate:"required"`
	Type string `json:"Type,omitempty"`
}

// Common entity types.
const (
	EntityTypeNamespace          = "namespace"
	EntityTypeTitle              = "title"
	EntityTypeMasterPlayer       = "master_player_account"
	EntityTypeTitlePlayerAccount = "title_player_account"
	EntityTypeCharacter          = "character"
	EntityTypeGroup              = "group"
	EntityTypeService            = "service"
)

type EntityLineage struct {
	CharacterId           string `json:"CharacterId,omitempty"`
	GroupId               string `json:"GroupId,omitempty"`
	MasterPlayerAccountId string `json:"MasterPlayerAccountId,omitempty"`
	NamespaceId           string `json:"NamespaceId,omitempty"`
	TitleId               string `json:"TitleId,omitempty"`
	TitlePlayerAccountId  string `json:"TitlePlayerAccountId,omitempty"`
}

type EntityWithLineage struct {
	Key     *EntityKey           `json:"Key,omitempty"`
	Lineage map[string]EntityKey `json:"Lineage,omitempty"`
}

type EntityTokenResponse struct {
	Entity          *EntityKey `json:"Entity,omitempty"`
	EntityToken     string     `json:"EntityToken,omitempty"`
	TokenExpiration *time.Time `json:"TokenExpiration,omitempty"`
}

type UserDataRecord struct {
	LastUpdated time.Time `json:"LastUpdated"`
	Permission  string    `json:"Permission,omitempty"`
	Value       string    `json:"Value,omitempty"`
}

// User data permissions.
const (
	UserDataPermissionPrivate = "Private"
	UserDataPermissionPublic  = "Public"
)

type StatisticValue struct {
	StatisticName string `json:"StatisticName,omitempty"`
	Value         int32  `json:"Value"`
	Version       uint32 `json:"Version"`
}

type StatisticModel struct {
	Name    string `json:"Name,omitempty"`
	Value   int32  `json:"Value"`
	Version int32  `json:"Version"`
}

type TagModel struct {
	TagValue string `json:"TagValue,omitempty"`
}

type PlayerProfileModel struct {
	AvatarUrl   string           `json:"AvatarUrl,omitempty"`
	BannedUntil *time.Time       `json:"BannedUntil,omitempty"`
	Created     *time.Time       `json:"Created,omitempty"`
	DisplayName string           `json:"DisplayName,omitempty"`
	LastLogin   *time.Time       `json:"LastLogin,omitempty"`
	Origination string           `json:"Origination,omitempty"`
	PlayerId    string           `json:"PlayerId,omitempty"`
	PublisherId string           `json:"PublisherId,omitempty"`
	Statistics  []StatisticModel `json:"Statistics,omitempty"`
	Tags        []TagModel       `json:"Tags,omitempty"`
	TitleId     string           `json:"TitleId,omitempty"`
}

type UserCustomIdInfo struct {
	CustomId string `json:"CustomId,omitempty"`
}

type UserPrivateAccountInfo struct {
	Email string `json:"Email,omitempty"`
}

type UserTitleInfo struct {
	AvatarUrl          string     `json:"AvatarUrl,omitempty"`
	Created            time.Time  `json:"Created"`
	DisplayName        string     `json:"DisplayName,omitempty"`
	FirstLogin         *time.Time `json:"FirstLogin,omitempty"`
	IsBanned           *bool      `json:"isBanned,omitempty"`
	LastLogin          *time.Time `json:"LastLogin,omitempty"`
	Origination        string     `json:"Origination,omitempty"`
	TitlePlayerAccount *EntityKey `json:"TitlePlayerAccount,omitempty"`
}

type UserAccountInfo struct {
	Created      time.Time               `json:"Created"`
	CustomIdInfo *UserCustomIdInfo       `json:"CustomIdInfo,omitempty"`
	PlayFabId    string                  `json:"PlayFabId,omitempty"`
	PrivateInfo  *UserPrivateAccountInfo `json:"PrivateInfo,omitempty"`
	TitleInfo    *UserTitleInfo          `json:"TitleInfo,omitempty"`
	Username     string                  `json:"Username,omitempty"`
}

type ItemInstance struct {
	Annotation        string            `json:"Annotation,omitempty"`
	BundleContents    []string          `json:"BundleContents,omitempty"`
	BundleParent      string            `json:"BundleParent,omitempty"`
	CatalogVersion    string            `json:"CatalogVersion,omitempty"`
	CustomData        map[string]string `json:"CustomData,omitempty"`
	DisplayName       string            `json:"DisplayName,omitempty"`
	Expiration        *time.Time        `json:"Expiration,omitempty"`
	ItemClass         string            `json:"ItemClass,omitempty"`
	ItemId            string            `json:"ItemId,omitempty"`
	ItemInstanceId    string            `json:"ItemInstanceId,omitempty"`
	PurchaseDate      *time.Time        `json:"PurchaseDate,omitempty"`
	RemainingUses     *int32            `json:"RemainingUses,omitempty"`
	UnitCurrency      string            `json:"UnitCurrency,omitempty"`
	UnitPrice         uint32            `json:"UnitPrice"`
	UsesIncrementedBy *int32            `json:"UsesIncrementedBy,omitempty"`
}

type VirtualCurrencyRechargeTime struct {
	RechargeMax       int32     `json:"RechargeMax"`
	RechargeTime      time.Time `json:"RechargeTime"`
	SecondsToRecharge int32     `json:"SecondsToRecharge"`
}
