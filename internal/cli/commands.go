package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"fabforge/playfab"
)

type endpointRow struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Auth string `json:"auth"`
}

func newEndpointsCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [api]",
		Short: "List the callable endpoints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eps := playfab.Endpoints()
			if len(args) == 1 {
				eps = playfab.EndpointsByAPI(args[0])
				if len(eps) == 0 {
					return errors.Errorf("unknown api %q, expected one of %s", args[0], strings.Join(playfab.APIs(), ", "))
				}
			}
			rows := lo.Map(eps, func(ep playfab.Endpoint, _ int) endpointRow {
				return endpointRow{Name: ep.FullName(), Path: ep.Path, Auth: ep.Auth.String()}
			})
			return a.print(cmd.OutOrStdout(), rows)
		},
	}
}

func newCallCommand(a *App) *cobra.Command {
	var data string
	cmd := &cobra.Command{
		Use:   "call <endpoint> [json]",
		Short: "Send a raw JSON request to an endpoint",
		Example: `  playfab call Groups.GetGroup '{"GroupName":"Clan"}'
  playfab call Events.WriteEvents -d @events.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, ok := playfab.LookupEndpoint(args[0])
			if !ok {
				return errors.Errorf("unknown endpoint %q", args[0])
			}
			if len(args) == 2 {
				data = args[1]
			}
			body, err := readBody(data, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res, err := a.client.CallRaw(cmd.Context(), ep, body)
			if err != nil {
				return err
			}
			if len(res) == 0 {
				res = json.RawMessage("{}")
			}
			return a.print(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body: JSON, @file or - for stdin")
	return cmd
}

func readBody(data string, stdin io.Reader) ([]byte, error) {
	var body []byte
	switch {
	case data == "":
		return []byte("{}"), nil
	case data == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.WithMessage(err, "read stdin")
		}
		body = b
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, errors.WithMessage(err, "read request file")
		}
		body = b
	default:
		body = []byte(data)
	}
	if !json.Valid(body) {
		return nil, errors.New("request body is not valid JSON")
	}
	return body, nil
}

type sessionView struct {
	PlayFabId       string             `json:"playFabId,omitempty"`
	NewlyCreated    bool               `json:"newlyCreated,omitempty"`
	Entity          *playfab.EntityKey `json:"entity,omitempty"`
	TokenExpiration *time.Time         `json:"tokenExpiration,omitempty"`
	Profile         string             `json:"profile"`
}

func (a *App) session(newlyCreated bool) sessionView {
	ac := a.client.Credentials().Load()
	v := sessionView{
		PlayFabId:       ac.PlayFabID,
		NewlyCreated:    newlyCreated,
		TokenExpiration: ac.EntityTokenExpiration,
		Profile:         a.cfg.Credentials.Key,
	}
	if ac.Entity.Id != "" {
		v.Entity = &ac.Entity
	}
	return v
}

func newLoginCommand(a *App) *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:   "login <server-custom-id>",
		Short: "Sign a player in with a server custom id and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Server.LoginWithServerCustomId(cmd.Context(), &playfab.LoginWithServerCustomIdRequest{
				ServerCustomId: args[0],
				CreateAccount:  &create,
			})
			if err != nil {
				return err
			}
			if err := a.saveCredentials(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), a.session(res.NewlyCreated))
		},
	}
	cmd.Flags().BoolVar(&create, "create", true, "create the account when it does not exist")
	return cmd
}

func newTokenCommand(a *App) *cobra.Command {
	var entityID, entityType string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Fetch an entity token and store it",
		Long: `Fetch an entity token using the best credential available: the developer
secret key, then a stored session ticket, then a stored entity token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &playfab.GetEntityTokenRequest{}
			if entityID != "" {
				req.Entity = &playfab.EntityKey{Id: entityID, Type: entityType}
			}
			if _, err := a.client.Authentication.GetEntityToken(cmd.Context(), req); err != nil {
				return err
			}
			if err := a.saveCredentials(cmd.Context()); err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), a.session(false))
		},
	}
	cmd.Flags().StringVar(&entityID, "entity-id", "", "entity to fetch a token for, defaults to the caller")
	cmd.Flags().StringVar(&entityType, "entity-type", playfab.EntityTypeTitle, "type of --entity-id")
	return cmd
}

func newLogoutCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.client.ForgetAllCredentials()
			return a.store.Delete(cmd.Context(), a.cfg.Credentials.Key)
		},
	}
}
