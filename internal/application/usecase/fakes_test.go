package usecase_test

import (
	"bytes"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Emulan los contratos de
// los adaptadores Postgres: (nil, nil) cuando el registro no existe y el
// recálculo de percent_complete dentro de la misma operación.

// ── UserRepo ─────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUserRepo) SetObjective(id string, objective decimal.Decimal) error {
	u, ok := r.users[id]
	if !ok || u.Role != entity.RoleCloser {
		return nil
	}
	u.Objective = objective
	u.PercentComplete = entity.ComputePercent(u.Achieved, objective)
	return nil
}

func (r *fakeUserRepo) AddAchievement(id string, amount decimal.Decimal) error {
	u, ok := r.users[id]
	if !ok || u.Role != entity.RoleCloser {
		return nil
	}
	u.Achieved = u.Achieved.Add(amount)
	u.PercentComplete = entity.ComputePercent(u.Achieved, u.Objective)
	return nil
}

func (r *fakeUserRepo) ListClosers() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if u.Role == entity.RoleCloser {
			cp := *u
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// ── ClientRepo ───────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
	forms   map[string]*entity.ClientForm // por clientID
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		clients: make(map[string]*entity.Client),
		forms:   make(map[string]*entity.ClientForm),
	}
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetFormByClient(clientID string) (*entity.ClientForm, error) {
	f, ok := r.forms[clientID]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeClientRepo) ListByCloser(closerID string) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range r.clients {
		if c.CloserID == closerID {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

func (r *fakeClientRepo) UpdateStatus(id, status string) error {
	if c, ok := r.clients[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *fakeClientRepo) Reassign(id, newCloserID string) error {
	if c, ok := r.clients[id]; ok {
		c.CloserID = newCloserID
	}
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	delete(r.forms, id)
	return nil
}

// ── MeetingRepo ──────────────────────────────────────────────────────────────

type fakeMeetingRepo struct {
	meetings map[string]*entity.Meeting
}

var _ repository.MeetingRepository = (*fakeMeetingRepo)(nil)

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[string]*entity.Meeting)}
}

func (r *fakeMeetingRepo) Create(meeting *entity.Meeting) error {
	cp := *meeting
	r.meetings[meeting.ID] = &cp
	return nil
}

func (r *fakeMeetingRepo) GetByID(id string) (*entity.MeetingDetail, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, nil
	}
	return &entity.MeetingDetail{Meeting: *m}, nil
}

func (r *fakeMeetingRepo) ListByCloser(closerID string) ([]*entity.Meeting, error) {
	var list []*entity.Meeting
	for _, m := range r.meetings {
		if m.CloserID == closerID {
			cp := *m
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].MeetingDate.After(list[j].MeetingDate) })
	return list, nil
}

func (r *fakeMeetingRepo) ListByClient(clientID string) ([]*entity.MeetingDetail, error) {
	var list []*entity.MeetingDetail
	for _, m := range r.meetings {
		if m.ClientID != nil && *m.ClientID == clientID {
			list = append(list, &entity.MeetingDetail{Meeting: *m})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].MeetingDate.After(list[j].MeetingDate) })
	return list, nil
}

func (r *fakeMeetingRepo) Update(id string, upd entity.MeetingUpdate) error {
	m, ok := r.meetings[id]
	if !ok {
		return nil
	}
	if upd.MeetingDate != nil {
		m.MeetingDate = *upd.MeetingDate
	}
	if upd.Location != nil {
		m.Location = *upd.Location
	}
	if upd.Notes != nil {
		m.Notes = *upd.Notes
	}
	if upd.SetClient {
		m.ClientID = upd.ClientID
	}
	return nil
}

func (r *fakeMeetingRepo) Delete(id string) error {
	delete(r.meetings, id)
	return nil
}

// ── PaymentProofRepo ─────────────────────────────────────────────────────────

type fakeProofRepo struct {
	proofs map[string]*entity.PaymentProof
}

var _ repository.PaymentProofRepository = (*fakeProofRepo)(nil)

func newFakeProofRepo() *fakeProofRepo {
	return &fakeProofRepo{proofs: make(map[string]*entity.PaymentProof)}
}

func (r *fakeProofRepo) Create(proof *entity.PaymentProof) error {
	cp := *proof
	r.proofs[proof.ID] = &cp
	return nil
}

func (r *fakeProofRepo) GetByID(id string) (*entity.PaymentProof, error) {
	p, ok := r.proofs[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProofRepo) ListByClient(clientID string) ([]*entity.PaymentProof, error) {
	var list []*entity.PaymentProof
	for _, p := range r.proofs {
		if p.ClientID == clientID {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UploadedAt.After(list[j].UploadedAt) })
	return list, nil
}

func (r *fakeProofRepo) Delete(id string) error {
	delete(r.proofs, id)
	return nil
}

// ── NotificationRepo ─────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
}

var _ repository.NotificationRepository = (*fakeNotificationRepo)(nil)

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(notification *entity.Notification) error {
	cp := *notification
	r.notifications[notification.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			cp := *n
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeNotificationRepo) MarkRead(id string) error {
	if n, ok := r.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	delete(r.notifications, id)
	return nil
}

// ── FileStore ────────────────────────────────────────────────────────────────

type fakeFileStore struct {
	saved map[string][]byte // url -> contenido
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	url := "/uploads/" + filename
	s.saved[url] = buf.Bytes()
	return url, nil
}
