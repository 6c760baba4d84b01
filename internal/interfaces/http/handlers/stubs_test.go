package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/pkg/utils"
)

type userRepoStub struct {
	items map[string]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[string]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if _, ok := s.items[user.ID]; ok {
		return domainerrors.ErrAlreadyExists
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*entities.User, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, item := range s.items {
		if item.Email == email {
			return item, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) List(_ context.Context, page utils.PaginationParams) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	if page.Enabled() {
		start := (page.Page - 1) * page.Limit
		if start > len(out) {
			start = len(out)
		}
		end := start + page.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.items[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type workerRepoStub struct {
	items map[string]*entities.Worker
	specs *specializationRepoStub
}

func newWorkerRepoStub(specs *specializationRepoStub) *workerRepoStub {
	return &workerRepoStub{items: map[string]*entities.Worker{}, specs: specs}
}

func (s *workerRepoStub) Create(_ context.Context, worker *entities.Worker) error {
	s.items[worker.ID] = worker
	return nil
}

func (s *workerRepoStub) GetByID(_ context.Context, id string) (*entities.Worker, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *workerRepoStub) GetByEmail(_ context.Context, email string) (*entities.Worker, error) {
	for _, item := range s.items {
		if item.Email == email {
			return item, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *workerRepoStub) List(_ context.Context) ([]*entities.Worker, error) {
	out := make([]*entities.Worker, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *workerRepoStub) ListBySpecialization(_ context.Context, category string) ([]*entities.Worker, error) {
	out := make([]*entities.Worker, 0)
	for _, spec := range s.specs.items {
		if spec.Name != category {
			continue
		}
		if w, ok := s.items[spec.WorkerID]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *workerRepoStub) Update(_ context.Context, worker *entities.Worker) error {
	if _, ok := s.items[worker.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[worker.ID] = worker
	return nil
}

func (s *workerRepoStub) SetAvailability(_ context.Context, id string, available bool) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.IsAvailable = available
	return nil
}

func (s *workerRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type specializationRepoStub struct {
	items map[string]*entities.Specialization
}

func newSpecializationRepoStub() *specializationRepoStub {
	return &specializationRepoStub{items: map[string]*entities.Specialization{}}
}

func (s *specializationRepoStub) Create(_ context.Context, spec *entities.Specialization) error {
	s.items[spec.ID] = spec
	return nil
}

func (s *specializationRepoStub) GetByID(_ context.Context, id string) (*entities.Specialization, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *specializationRepoStub) List(_ context.Context) ([]*entities.Specialization, error) {
	out := make([]*entities.Specialization, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *specializationRepoStub) ListByWorker(_ context.Context, workerID string) ([]*entities.Specialization, error) {
	out := make([]*entities.Specialization, 0)
	for _, item := range s.items {
		if item.WorkerID == workerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *specializationRepoStub) UpdateName(_ context.Context, id, name string) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Name = name
	return nil
}

func (s *specializationRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type locationRepoStub struct {
	items []*entities.LiveLocation
}

func (s *locationRepoStub) Create(_ context.Context, loc *entities.LiveLocation) error {
	loc.CreatedAt = time.Now().Add(time.Duration(len(s.items)) * time.Millisecond)
	s.items = append(s.items, loc)
	return nil
}

func (s *locationRepoStub) GetByID(_ context.Context, id string) (*entities.LiveLocation, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *locationRepoStub) List(_ context.Context) ([]*entities.LiveLocation, error) {
	return append([]*entities.LiveLocation{}, s.items...), nil
}

func (s *locationRepoStub) ListByWorker(_ context.Context, workerID string) ([]*entities.LiveLocation, error) {
	var out []*entities.LiveLocation
	for _, item := range s.items {
		if item.WorkerID == workerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *locationRepoStub) LatestByWorker(_ context.Context, workerID string) (*entities.LiveLocation, error) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].WorkerID == workerID {
			return s.items[i], nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *locationRepoStub) Delete(_ context.Context, id string) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *locationRepoStub) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	kept := s.items[:0]
	var removed int64
	for _, item := range s.items {
		if item.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return removed, nil
}

type orderRepoStub struct {
	items map[string]*entities.Order
}

func newOrderRepoStub() *orderRepoStub {
	return &orderRepoStub{items: map[string]*entities.Order{}}
}

func (s *orderRepoStub) Create(_ context.Context, order *entities.Order) error {
	s.items[order.ID] = order
	return nil
}

func (s *orderRepoStub) GetByID(_ context.Context, id string) (*entities.Order, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *orderRepoStub) List(_ context.Context, _ utils.PaginationParams) ([]*entities.Order, int64, error) {
	out := make([]*entities.Order, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, int64(len(out)), nil
}

func (s *orderRepoStub) ListByUser(_ context.Context, userID string) ([]*entities.Order, error) {
	out := make([]*entities.Order, 0)
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *orderRepoStub) ListByWorker(_ context.Context, workerID string) ([]*entities.Order, error) {
	out := make([]*entities.Order, 0)
	for _, item := range s.items {
		if item.WorkerID == workerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *orderRepoStub) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) error {
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Status = status
	return nil
}

func (s *orderRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type transactionRepoStub struct {
	items  map[string]*entities.Transaction
	orders *orderRepoStub
}

func newTransactionRepoStub(orders *orderRepoStub) *transactionRepoStub {
	return &transactionRepoStub{items: map[string]*entities.Transaction{}, orders: orders}
}

func (s *transactionRepoStub) Create(_ context.Context, txn *entities.Transaction) error {
	s.items[txn.ID] = txn
	return nil
}

func (s *transactionRepoStub) GetByID(_ context.Context, id string) (*entities.Transaction, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *transactionRepoStub) List(_ context.Context) ([]*entities.Transaction, error) {
	out := make([]*entities.Transaction, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *transactionRepoStub) ListByOrder(_ context.Context, orderID string) ([]*entities.Transaction, error) {
	out := make([]*entities.Transaction, 0)
	for _, item := range s.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *transactionRepoStub) ListByUser(_ context.Context, userID string) ([]*entities.Transaction, error) {
	out := make([]*entities.Transaction, 0)
	for _, item := range s.items {
		if order, ok := s.orders.items[item.OrderID]; ok && order.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *transactionRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type reviewRepoStub struct {
	items map[string]*entities.Review
}

func newReviewRepoStub() *reviewRepoStub {
	return &reviewRepoStub{items: map[string]*entities.Review{}}
}

func (s *reviewRepoStub) Create(_ context.Context, review *entities.Review) error {
	s.items[review.ID] = review
	return nil
}

func (s *reviewRepoStub) GetByID(_ context.Context, id string) (*entities.Review, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *reviewRepoStub) List(_ context.Context) ([]*entities.Review, error) {
	out := make([]*entities.Review, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *reviewRepoStub) ListByOrder(_ context.Context, orderID string) ([]*entities.Review, error) {
	out := make([]*entities.Review, 0)
	for _, item := range s.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *reviewRepoStub) ListByWorker(_ context.Context, workerID string) ([]*entities.Review, error) {
	out := make([]*entities.Review, 0)
	for _, item := range s.items {
		if item.WorkerID == workerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *reviewRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type publishedEvent struct {
	Room    string
	Type    string
	Payload interface{}
}

type publisherStub struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *publisherStub) Publish(_ context.Context, room, eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Room: room, Type: eventType, Payload: payload})
	return nil
}

func (p *publisherStub) rooms() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Room)
	}
	return out
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
