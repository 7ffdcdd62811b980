package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso del directorio de usuarios (Admins y Closers):
// registro, perfil y la contabilidad objetivo/avance de los Closers.
type UserUseCase struct {
	userRepo    repository.UserRepository
	clientRepo  repository.ClientRepository
	meetingRepo repository.MeetingRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, clientRepo repository.ClientRepository, meetingRepo repository.MeetingRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, clientRepo: clientRepo, meetingRepo: meetingRepo}
}

// Register crea un ADMIN o un CLOSER. La restricción "solo un ADMIN invoca
// esto" la aplica el boundary HTTP, no este componente.
// Objective solo aplica a CLOSER y GroupObjective solo a ADMIN; los campos
// del rol contrario quedan en cero/NULL.
func (uc *UserUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	objective := decimal.Zero
	if in.Role == entity.RoleCloser && in.Objective != nil {
		objective = *in.Objective
	}
	groupObjective := decimal.NullDecimal{}
	if in.Role == entity.RoleAdmin {
		groupObjective = decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
		if in.GroupObjective != nil {
			groupObjective.Decimal = *in.GroupObjective
		}
	}

	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           in.Email,
		Name:            in.Name,
		Role:            in.Role,
		PasswordHash:    string(hash),
		Objective:       objective,
		Achieved:        decimal.Zero,
		PercentComplete: decimal.Zero,
		GroupObjective:  groupObjective,
		GroupAchieved:   decimal.Zero,
		GroupPercent:    decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{UserID: user.ID, Message: "usuario creado correctamente"}, nil
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToProfileResponse(user), nil
}

// SetObjective fija el objetivo del Closer autenticado. El percent_complete
// se recalcula en el storage dentro del mismo UPDATE (0 si el objetivo es 0).
func (uc *UserUseCase) SetObjective(userID string, objective decimal.Decimal) error {
	if objective.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.userRepo.SetObjective(userID, objective)
}

// AddAchievement suma amount al avance del Closer autenticado. Si la cuenta
// no existe o no es CLOSER el storage no toca ninguna fila y la operación
// termina sin error, como el contrato lo pide.
func (uc *UserUseCase) AddAchievement(userID string, amount decimal.Decimal) error {
	return uc.userRepo.AddAchievement(userID, amount)
}

// ListClients devuelve los clientes del Closer, updated_at desc.
func (uc *UserUseCase) ListClients(closerID string) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.ListByCloser(closerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ToClientResponse(c))
	}
	return out, nil
}

// ListMeetings devuelve las reuniones del Closer, meeting_date desc.
func (uc *UserUseCase) ListMeetings(closerID string) ([]dto.MeetingResponse, error) {
	meetings, err := uc.meetingRepo.ListByCloser(closerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, dto.ToMeetingResponse(m))
	}
	return out, nil
}

// ListClosers devuelve todos los Closers con sus métricas (vista de ADMIN).
func (uc *UserUseCase) ListClosers() ([]dto.CloserSummary, error) {
	closers, err := uc.userRepo.ListClosers()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CloserSummary, 0, len(closers))
	for _, c := range closers {
		out = append(out, dto.ToCloserSummary(c))
	}
	return out, nil
}
