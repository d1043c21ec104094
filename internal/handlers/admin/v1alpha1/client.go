package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Client calls the admin services over a gRPC connection and decodes the
// responses into domain values. gRPC errors come back as *errors.Error with
// any validation issues restored.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client over cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) call(ctx context.Context, service, method string, req map[string]any, resp any) error {
	in, err := encode(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(service, method), in, out); err != nil {
		return errors.FromGRPCError(err)
	}

	if resp == nil {
		return nil
	}
	return decode(out, resp)
}

// ValidateTalent dry-runs a talent form
func (c *Client) ValidateTalent(ctx context.Context, raw map[string]any) (*TalentValidation, error) {
	var resp TalentValidation
	if err := c.call(ctx, TalentServiceName, "ValidateTalent", map[string]any{"talent": raw}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTalent stores a talent form
func (c *Client) CreateTalent(ctx context.Context, raw map[string]any) (*talents.Talent, error) {
	var resp struct {
		Talent *talents.Talent `json:"talent"`
	}
	if err := c.call(ctx, TalentServiceName, "CreateTalent", map[string]any{"talent": raw}, &resp); err != nil {
		return nil, err
	}
	return resp.Talent, nil
}

// UpdateTalent applies changes to a stored talent; a nil value clears a field
func (c *Client) UpdateTalent(ctx context.Context, id string, changes map[string]any) (*talents.Talent, error) {
	var resp struct {
		Talent *talents.Talent `json:"talent"`
	}
	req := map[string]any{"id": id, "changes": changes}
	if err := c.call(ctx, TalentServiceName, "UpdateTalent", req, &resp); err != nil {
		return nil, err
	}
	return resp.Talent, nil
}

// GetTalent returns a stored talent
func (c *Client) GetTalent(ctx context.Context, id string) (*talents.Talent, error) {
	var resp struct {
		Talent *talents.Talent `json:"talent"`
	}
	if err := c.call(ctx, TalentServiceName, "GetTalent", map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return resp.Talent, nil
}

// ListTalents returns stored talents; an empty tag lists all of them
func (c *Client) ListTalents(ctx context.Context, tag string) ([]*talents.Talent, error) {
	var resp struct {
		Talents []*talents.Talent `json:"talents"`
	}
	req := map[string]any{}
	if tag != "" {
		req["tag"] = tag
	}
	if err := c.call(ctx, TalentServiceName, "ListTalents", req, &resp); err != nil {
		return nil, err
	}
	return resp.Talents, nil
}

// DeleteTalent removes a stored talent
func (c *Client) DeleteTalent(ctx context.Context, id string) error {
	return c.call(ctx, TalentServiceName, "DeleteTalent", map[string]any{"id": id}, nil)
}

// PreviewEffects rolls the amounts of a stored talent's effects
func (c *Client) PreviewEffects(ctx context.Context, id string) (*EffectPreviews, error) {
	var resp EffectPreviews
	if err := c.call(ctx, TalentServiceName, "PreviewEffects", map[string]any{"id": id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RevalidateTalents lists the stored talents the server's schema rejects
func (c *Client) RevalidateTalents(ctx context.Context) (*Revalidation, error) {
	var resp Revalidation
	if err := c.call(ctx, TalentServiceName, "RevalidateTalents", map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type raritiesResponse struct {
	Rarities []talents.RarityItem `json:"rarities"`
}

type rarityResponse struct {
	Rarity *talents.RarityItem `json:"rarity"`
}

// ListRarities returns the rarity collection, refreshing it from the remote
// rarity service first when refresh is set
func (c *Client) ListRarities(ctx context.Context, refresh bool) ([]talents.RarityItem, error) {
	var resp raritiesResponse
	if err := c.call(ctx, RarityServiceName, "ListRarities", map[string]any{"refresh": refresh}, &resp); err != nil {
		return nil, err
	}
	return resp.Rarities, nil
}

// CreateRarity submits a rarity form
func (c *Client) CreateRarity(ctx context.Context, raw map[string]any) (*talents.RarityItem, error) {
	var resp rarityResponse
	if err := c.call(ctx, RarityServiceName, "CreateRarity", map[string]any{"rarity": raw}, &resp); err != nil {
		return nil, err
	}
	return resp.Rarity, nil
}

// UpdateRarity applies changes to a rarity
func (c *Client) UpdateRarity(ctx context.Context, id string, changes map[string]any) (*talents.RarityItem, error) {
	var resp rarityResponse
	req := map[string]any{"id": id, "changes": changes}
	if err := c.call(ctx, RarityServiceName, "UpdateRarity", req, &resp); err != nil {
		return nil, err
	}
	return resp.Rarity, nil
}

// DeleteRarity removes a rarity
func (c *Client) DeleteRarity(ctx context.Context, id string) error {
	return c.call(ctx, RarityServiceName, "DeleteRarity", map[string]any{"id": id}, nil)
}

// MoveRarity moves the rarity at from to to
func (c *Client) MoveRarity(ctx context.Context, from, to int) ([]talents.RarityItem, error) {
	var resp raritiesResponse
	if err := c.call(ctx, RarityServiceName, "MoveRarity", map[string]any{"from": from, "to": to}, &resp); err != nil {
		return nil, err
	}
	return resp.Rarities, nil
}

// ResetRarities restores the default rarities
func (c *Client) ResetRarities(ctx context.Context) ([]talents.RarityItem, error) {
	var resp raritiesResponse
	if err := c.call(ctx, RarityServiceName, "ResetRarities", map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return resp.Rarities, nil
}

// ValidateReport dry-runs a report form
func (c *Client) ValidateReport(ctx context.Context, raw map[string]any) (*ReportValidation, error) {
	var resp ReportValidation
	if err := c.call(ctx, ReportServiceName, "ValidateReport", map[string]any{"report": raw}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateReport stores a report form
func (c *Client) CreateReport(ctx context.Context, raw map[string]any) (*talents.Report, error) {
	var resp struct {
		Report *talents.Report `json:"report"`
	}
	if err := c.call(ctx, ReportServiceName, "CreateReport", map[string]any{"report": raw}, &resp); err != nil {
		return nil, err
	}
	return resp.Report, nil
}

// ListReports returns reports newest first; zero limit returns all
func (c *Client) ListReports(ctx context.Context, limit int) ([]*talents.Report, error) {
	var resp struct {
		Reports []*talents.Report `json:"reports"`
	}
	if err := c.call(ctx, ReportServiceName, "ListReports", map[string]any{"limit": limit}, &resp); err != nil {
		return nil, err
	}
	return resp.Reports, nil
}
