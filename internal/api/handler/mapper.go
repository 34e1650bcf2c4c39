package handler

import (
	"time"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	}
}

func toCreateVehicleInput(req createVehicleRequest) ports.CreateVehicleInput {
	return ports.CreateVehicleInput{
		Plate:   req.Plate,
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Color:   req.Color,
		OwnerID: req.OwnerID,
	}
}

func toUpdateVehicleInput(req updateVehicleRequest) ports.UpdateVehicleInput {
	return ports.UpdateVehicleInput{
		Plate: req.Plate,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Color: req.Color,
	}
}

func toCreateServiceInput(req createServiceRequest) ports.CreateServiceInput {
	return ports.CreateServiceInput{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		Notes:       req.Notes,
		Status:      req.Status,
		MechanicID:  req.MechanicID,
		ExpectedAt:  req.ExpectedAt,
	}
}

func toUpdateServiceInput(req updateServiceRequest) ports.UpdateServiceInput {
	return ports.UpdateServiceInput{
		Description: req.Description,
		Notes:       req.Notes,
		Status:      req.Status,
		MechanicID:  req.MechanicID,
		ExpectedAt:  req.ExpectedAt,

		ClearMechanic: req.ClearMechanic,
	}
}

// --- Service result → HTTP response ---

// formatTime renders every timestamp as RFC3339 in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func toUserDetailResponse(d *ports.UserDetail) userDetailResponse {
	return userDetailResponse{
		userResponse: toUserResponse(d.User),
		Vehicles:     toVehicleResponses(d.Vehicles),
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toVehicleResponse(v *domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:        v.ID,
		Plate:     v.Plate,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		OwnerID:   v.OwnerID,
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func toVehicleResponses(vehicles []*domain.Vehicle) []vehicleResponse {
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

func toVehicleDetailResponse(d *ports.VehicleDetail) vehicleDetailResponse {
	return vehicleDetailResponse{
		vehicleResponse: toVehicleResponse(d.Vehicle),
		Services:        toServiceResponses(d.Services),
	}
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:              s.ID,
		Description:     s.Description,
		Notes:           s.Notes,
		Status:          string(s.Status),
		Value:           s.Value,
		VehicleID:       s.VehicleID,
		MechanicID:      s.MechanicID,
		ApprovedQuoteID: s.ApprovedQuoteID,
		CreatedAt:       formatTime(s.CreatedAt),
		UpdatedAt:       formatTime(s.UpdatedAt),
		ExpectedAt:      formatTimePtr(s.ExpectedAt),
		CompletedAt:     formatTimePtr(s.CompletedAt),
	}
}

func toServiceResponses(services []*domain.Service) []serviceResponse {
	out := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return out
}

func toServiceDetailResponse(d *ports.ServiceDetail) serviceDetailResponse {
	return serviceDetailResponse{
		serviceResponse: toServiceResponse(d.Service),
		Quotes:          toQuoteResponses(d.Quotes),
	}
}

func toQuoteResponse(q *domain.Quote) quoteResponse {
	return quoteResponse{
		ID:          q.ID,
		Description: q.Description,
		Amount:      q.Amount,
		ServiceID:   q.ServiceID,
		CreatedAt:   formatTime(q.CreatedAt),
		ApprovedAt:  formatTimePtr(q.ApprovedAt),
	}
}

func toQuoteResponses(quotes []*domain.Quote) []quoteResponse {
	out := make([]quoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toQuoteResponse(q))
	}
	return out
}

func toEventResponses(events []*domain.ServiceEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventResponse{
			Type:       string(e.Type),
			FromStatus: string(e.FromStatus),
			ToStatus:   string(e.ToStatus),
			ActorID:    e.ActorID,
			ActorRole:  string(e.ActorRole),
			MechanicID: e.MechanicID,
			QuoteID:    e.QuoteID,
			Amount:     e.Amount,
			OccurredAt: formatTime(e.OccurredAt),
		})
	}
	return out
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	// Every status is present so the shape does not depend on the data.
	byStatus := make(map[string]int64, len(domain.Statuses))
	for _, st := range domain.Statuses {
		byStatus[string(st)] = d.Stats.ByStatus[st]
	}

	resp := dashboardResponse{
		Role: string(d.Role),
		Stats: dashboardStatsResponse{
			TotalClients:   d.Stats.TotalClients,
			TotalMechanics: d.Stats.TotalMechanics,
			TotalVehicles:  d.Stats.TotalVehicles,
			TotalServices:  d.Stats.TotalServices,
			ActiveServices: d.Stats.ActiveServices,
			AwaitingQuote:  d.Stats.AwaitingQuote,
			Revenue:        d.Stats.Revenue,
			ByStatus:       byStatus,
		},
		Services: toServiceResponses(d.Services),
	}
	for _, w := range d.Workloads {
		resp.Workloads = append(resp.Workloads, workloadResponse{
			MechanicID:         w.MechanicID,
			Name:               w.Name,
			AwaitingQuote:      w.AwaitingQuote,
			InProgress:         w.InProgress,
			CompletedThisMonth: w.CompletedThisMonth,
			Total:              w.Total,
		})
	}
	if len(d.Vehicles) > 0 {
		resp.Vehicles = toVehicleResponses(d.Vehicles)
	}
	return resp
}
