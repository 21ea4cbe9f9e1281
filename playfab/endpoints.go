package playfab

import (
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Endpoint is one row of the API table: a fixed path and the credential it requires.
type Endpoint struct {
	API  string
	Name string
	Path string
	Auth AuthType
}

// FullName returns "<API>.<Name>", the name used by LookupEndpoint.
func (e Endpoint) FullName() string {
	return e.API + "." + e.Name
}

var (
	registry      []Endpoint
	registryIndex map[string]Endpoint
	registryOnce  sync.Once
)

func register(api, name, path string, auth AuthType) Endpoint {
	ep := Endpoint{API: api, Name: name, Path: path, Auth: auth}
	registry = append(registry, ep)
	return ep
}

func index() map[string]Endpoint {
	registryOnce.Do(func() {
		registryIndex = make(map[string]Endpoint, len(registry)*2)
		for _, ep := range registry {
			registryIndex[strings.ToLower(ep.FullName())] = ep
			registryIndex[strings.ToLower(ep.Path)] = ep
		}
	})
	return registryIndex
}

// Endpoints returns every known endpoint ordered by full name.
func Endpoints() []Endpoint {
	out := append([]Endpoint(nil), registry...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}

// EndpointsByAPI returns the endpoints of one API group, e.g. "Groups".
func EndpointsByAPI(api string) []Endpoint {
	return lo.Filter(Endpoints(), func(ep Endpoint, _ int) bool {
		return strings.EqualFold(ep.API, api)
	})
}

// APIs returns the distinct API group names.
func APIs() []string {
	names := lo.Uniq(lo.Map(registry, func(ep Endpoint, _ int) string {
		return ep.API
	}))
	sort.Strings(names)
	return names
}

// LookupEndpoint finds an endpoint by full name ("Groups.CreateGroup") or path ("/Group/CreateGroup").
// Matching is case-insensitive.
func LookupEndpoint(name string) (Endpoint, bool) {
	ep, ok := index()[strings.ToLower(strings.TrimSpace(name))]
	return ep, ok
}
