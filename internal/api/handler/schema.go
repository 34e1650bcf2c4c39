package handler

import "time"

// --- Request types ---

type registerRequest struct {
	Name     string `json:"nome"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"senha"    validate:"required,min=6"`
	Phone    string `json:"telefone"`
	Role     string `json:"tipo"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

type createUserRequest = registerRequest

type updateUserRequest struct {
	Name     *string `json:"nome"     validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"senha"    validate:"omitempty,min=6"`
	Phone    *string `json:"telefone"`
	Role     *string `json:"tipo"`
}

type createVehicleRequest struct {
	Plate   string `json:"placa"      validate:"required"`
	Make    string `json:"marca"      validate:"required"`
	Model   string `json:"modelo"     validate:"required"`
	Year    int    `json:"ano"        validate:"required"`
	Color   string `json:"cor"`
	OwnerID uint   `json:"usuario_id"`
}

type updateVehicleRequest struct {
	Plate *string `json:"placa"  validate:"omitempty,min=1"`
	Make  *string `json:"marca"  validate:"omitempty,min=1"`
	Model *string `json:"modelo" validate:"omitempty,min=1"`
	Year  *int    `json:"ano"`
	Color *string `json:"cor"`
}

type createServiceRequest struct {
	VehicleID   uint       `json:"veiculo_id"    validate:"required"`
	Description string     `json:"descricao"     validate:"required"`
	Notes       string     `json:"observacoes"`
	Status      string     `json:"status"`
	MechanicID  *uint      `json:"mecanico_id"`
	ExpectedAt  *time.Time `json:"data_previsao"`
}

type updateServiceRequest struct {
	Description *string    `json:"descricao"     validate:"omitempty,min=1"`
	Notes       *string    `json:"observacoes"`
	Status      *string    `json:"status"`
	MechanicID  *uint      `json:"mecanico_id"`
	ExpectedAt  *time.Time `json:"data_previsao"`

	// ClearMechanic unassigns the mechanic; null mecanico_id leaves it as is.
	ClearMechanic bool `json:"remover_mecanico"`
}

type createQuoteRequest struct {
	Description string  `json:"descricao" validate:"required"`
	Amount      float64 `json:"valor"`
}

// --- Response types ---

type userResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Role      string `json:"tipo"`
	CreatedAt string `json:"data_cadastro"`
}

type userDetailResponse struct {
	userResponse
	Vehicles []vehicleResponse `json:"veiculos"`
}

type userListResponse struct {
	Users []userResponse `json:"usuarios"`
	Total int            `json:"total"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"usuario"`
}

type userMutationResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"usuario"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type vehicleResponse struct {
	ID        uint   `json:"id"`
	Plate     string `json:"placa"`
	Make      string `json:"marca"`
	Model     string `json:"modelo"`
	Year      int    `json:"ano"`
	Color     string `json:"cor"`
	OwnerID   uint   `json:"usuario_id"`
	CreatedAt string `json:"criado_em"`
}

type vehicleDetailResponse struct {
	vehicleResponse
	Services []serviceResponse `json:"servicos"`
}

type vehicleListResponse struct {
	Vehicles []vehicleResponse `json:"veiculos"`
	Total    int               `json:"total"`
}

type vehicleMutationResponse struct {
	Message string          `json:"message"`
	Vehicle vehicleResponse `json:"veiculo"`
}

type serviceResponse struct {
	ID              uint     `json:"id"`
	Description     string   `json:"descricao"`
	Notes           string   `json:"observacoes"`
	Status          string   `json:"status"`
	Value           *float64 `json:"valor"`
	VehicleID       uint     `json:"veiculo_id"`
	MechanicID      *uint    `json:"mecanico_id"`
	ApprovedQuoteID *uint    `json:"orcamento_aprovado_id"`
	CreatedAt       string   `json:"criado_em"`
	UpdatedAt       string   `json:"atualizado_em"`
	ExpectedAt      *string  `json:"data_previsao"`
	CompletedAt     *string  `json:"data_conclusao"`
}

type serviceDetailResponse struct {
	serviceResponse
	Quotes []quoteResponse `json:"orcamentos"`
}

type serviceListResponse struct {
	Services []serviceResponse `json:"servicos"`
	Total    int               `json:"total"`
}

type serviceMutationResponse struct {
	Message string          `json:"message"`
	Service serviceResponse `json:"servico"`
}

type quoteResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"descricao"`
	Amount      float64 `json:"valor"`
	ServiceID   uint    `json:"servico_id"`
	CreatedAt   string  `json:"criado_em"`
	ApprovedAt  *string `json:"aprovado_em"`
}

type quoteListResponse struct {
	Quotes []quoteResponse `json:"orcamentos"`
	Total  int             `json:"total"`
}

type quoteMutationResponse struct {
	Message string        `json:"message"`
	Quote   quoteResponse `json:"orcamento"`
}

type eventResponse struct {
	Type       string   `json:"tipo"`
	FromStatus string   `json:"status_anterior"`
	ToStatus   string   `json:"status_novo"`
	ActorID    uint     `json:"usuario_id"`
	ActorRole  string   `json:"usuario_tipo"`
	MechanicID *uint    `json:"mecanico_id"`
	QuoteID    *uint    `json:"orcamento_id"`
	Amount     *float64 `json:"valor"`
	OccurredAt string   `json:"ocorrido_em"`
}

type historyResponse struct {
	ServiceID uint            `json:"servico_id"`
	Events    []eventResponse `json:"eventos"`
	Total     int             `json:"total"`
}

type dashboardStatsResponse struct {
	TotalClients   int64            `json:"total_clientes"`
	TotalMechanics int64            `json:"total_mecanicos"`
	TotalVehicles  int64            `json:"total_veiculos"`
	TotalServices  int64            `json:"total_servicos"`
	ActiveServices int64            `json:"servicos_ativos"`
	AwaitingQuote  int64            `json:"aguardando_orcamento"`
	Revenue        float64          `json:"faturamento"`
	ByStatus       map[string]int64 `json:"por_status"`
}

type workloadResponse struct {
	MechanicID         uint   `json:"mecanico_id"`
	Name               string `json:"nome"`
	AwaitingQuote      int64  `json:"aguardando_orcamento"`
	InProgress         int64  `json:"em_andamento"`
	CompletedThisMonth int64  `json:"concluidos_mes"`
	Total              int64  `json:"total"`
}

type dashboardResponse struct {
	Role      string                 `json:"tipo_usuario"`
	Stats     dashboardStatsResponse `json:"estatisticas"`
	Workloads []workloadResponse     `json:"mecanicos,omitempty"`
	Vehicles  []vehicleResponse      `json:"veiculos,omitempty"`
	Services  []serviceResponse      `json:"servicos"`
}
