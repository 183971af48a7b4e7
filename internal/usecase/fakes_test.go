package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"kuchikomi/internal/domain/entity"
	"kuchikomi/pkg/errors"
)

// In-memory repository fakes. They mirror the store contracts the real
// adapters implement: Create stamps ids and timestamps, reads return
// NOT_FOUND AppErrors, and the points fake increments atomically.

type memVerificationRepo struct {
	mu    sync.Mutex
	items map[string]*entity.PurchaseVerification
}

func newMemVerificationRepo() *memVerificationRepo {
	return &memVerificationRepo{items: make(map[string]*entity.PurchaseVerification)}
}

func (r *memVerificationRepo) Create(ctx context.Context, v *entity.PurchaseVerification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = uuid.New().String()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	cp := *v
	r.items[v.ID] = &cp
	return nil
}

func (r *memVerificationRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Verification", nil)
	}
	cp := *v
	return &cp, nil
}

func (r *memVerificationRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PurchaseVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PurchaseVerification
	for _, v := range r.items {
		if v.UserID == userID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memVerificationRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseVerification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PurchaseVerification
	for _, v := range r.items {
		if v.Status == status {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *memVerificationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	if !ok {
		return errors.NotFound("Verification", nil)
	}
	v.Status = status
	v.UpdatedAt = time.Now()
	return nil
}

func (r *memVerificationRepo) HasApproved(ctx context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.UserID == userID && v.ProductID == productID && v.Status == entity.VerificationStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVerificationRepo) HasAnyApproved(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.UserID == userID && v.Status == entity.VerificationStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVerificationRepo) ApprovedUserSet(ctx context.Context, userIDs []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, id := range userIDs {
		ok, _ := r.HasAnyApproved(ctx, id)
		if ok {
			out[id] = true
		}
	}
	return out, nil
}

type memReviewRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{items: make(map[string]*entity.Review)}
}

func (r *memReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	cp := *review
	r.items[review.ID] = &cp
	return nil
}

func (r *memReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	cp := *review
	return &cp, nil
}

func (r *memReviewRepo) list(match func(*entity.Review) bool, limit, offset int) ([]*entity.Review, int64) {
	var out []*entity.Review
	for _, review := range r.items {
		if match(review) {
			cp := *review
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total
}

func (r *memReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, total := r.list(func(rv *entity.Review) bool { return rv.ProductID == productID }, limit, offset)
	return out, total, nil
}

func (r *memReviewRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, total := r.list(func(*entity.Review) bool { return true }, limit, offset)
	return out, total, nil
}

func (r *memReviewRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, review := range r.items {
		if review.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	review.UpdatedAt = time.Now()
	cp := *review
	r.items[review.ID] = &cp
	return nil
}

func (r *memReviewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.items, id)
	return nil
}

type memPointsRepo struct {
	mu       sync.Mutex
	accounts map[string]*entity.UserPoints
}

func newMemPointsRepo() *memPointsRepo {
	return &memPointsRepo{accounts: make(map[string]*entity.UserPoints)}
}

func (r *memPointsRepo) Get(ctx context.Context, userID string) (*entity.UserPoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[userID]
	if !ok {
		return nil, errors.NotFound("Points account", nil)
	}
	cp := *acc
	return &cp, nil
}

func (r *memPointsRepo) Add(ctx context.Context, userID, category string, points int) (*entity.UserPoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[userID]
	if !ok {
		acc = &entity.UserPoints{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		r.accounts[userID] = acc
	}
	acc.TotalPoints += points
	switch category {
	case entity.PointCategoryReview:
		acc.ReviewPoints += points
	case entity.PointCategoryChat:
		acc.ChatPoints += points
	case entity.PointCategoryVerification:
		acc.VerificationPoints += points
	}
	acc.UpdatedAt = time.Now()
	cp := *acc
	return &cp, nil
}

type memChatRepo struct {
	mu       sync.Mutex
	messages []*entity.ChatMessage
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{}
}

func (r *memChatRepo) CreateMessage(ctx context.Context, m *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.New().String()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *memChatRepo) ListByRoom(ctx context.Context, roomID string) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if m.RoomID == roomID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memDMRepo struct {
	mu       sync.Mutex
	messages map[string]*entity.DirectMessage
	order    []string
}

func newMemDMRepo() *memDMRepo {
	return &memDMRepo{messages: make(map[string]*entity.DirectMessage)}
}

func (r *memDMRepo) Create(ctx context.Context, m *entity.DirectMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.New().String()
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	cp := *m
	r.messages[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *memDMRepo) GetByID(ctx context.Context, id string) (*entity.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	cp := *m
	return &cp, nil
}

func (r *memDMRepo) ListByReview(ctx context.Context, reviewID string) ([]*entity.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DirectMessage
	for _, id := range r.order {
		if m := r.messages[id]; m.ReviewID == reviewID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memDMRepo) MarkRead(ctx context.Context, id string) (*entity.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	if !m.IsRead {
		m.IsRead = true
		m.UpdatedAt = time.Now()
	}
	cp := *m
	return &cp, nil
}

func (r *memDMRepo) ListUnreadByReceiver(ctx context.Context, receiverID string) ([]*entity.DirectMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DirectMessage
	for _, id := range r.order {
		if m := r.messages[id]; m.ReceiverID == receiverID && !m.IsRead {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memCommunityRepo struct {
	mu          sync.Mutex
	communities map[string]*entity.ProductCommunity
	topics      map[string]*entity.CommunityTopic
}

func newMemCommunityRepo() *memCommunityRepo {
	return &memCommunityRepo{
		communities: make(map[string]*entity.ProductCommunity),
		topics:      make(map[string]*entity.CommunityTopic),
	}
}

func (r *memCommunityRepo) CreateCommunity(ctx context.Context, c *entity.ProductCommunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.communities[c.ID] = &cp
	return nil
}

func (r *memCommunityRepo) GetCommunityByProduct(ctx context.Context, productID string) (*entity.ProductCommunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.communities {
		if c.ProductID == productID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Community", nil)
}

func (r *memCommunityRepo) CreateTopic(ctx context.Context, t *entity.CommunityTopic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.topics[t.ID] = &cp
	return nil
}

func (r *memCommunityRepo) GetTopicByID(ctx context.Context, id string) (*entity.CommunityTopic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.topics[id]
	if !ok {
		return nil, errors.NotFound("Topic", nil)
	}
	cp := *t
	return &cp, nil
}

func (r *memCommunityRepo) ListActiveTopics(ctx context.Context, communityID string) ([]*entity.CommunityTopic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CommunityTopic
	for _, t := range r.topics {
		if t.CommunityID == communityID && t.IsActive {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCommunityRepo) UpdateTopic(ctx context.Context, t *entity.CommunityTopic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.topics[t.ID]; !ok {
		return errors.NotFound("Topic", nil)
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.topics[t.ID] = &cp
	return nil
}

type memProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.items {
		if category == "" || p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *memProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	items map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*entity.User)
	for _, id := range ids {
		if u, ok := r.items[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

// fakeUploader records upload keys so tests can assert that rejected files
// never reach storage.
type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	fail    bool
}

func (f *fakeUploader) UploadFile(ctx context.Context, file io.Reader, contentType, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", fmt.Errorf("upload rejected")
	}
	f.uploads = append(f.uploads, key)
	return "https://storage.example.com/" + key, nil
}

func (f *fakeUploader) DeleteFile(ctx context.Context, key string) error {
	return nil
}

func (f *fakeUploader) Close() error { return nil }

func (f *fakeUploader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

type fakeAuthClient struct {
	mu      sync.Mutex
	users   map[string]string // email -> uid
	revoked []string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{users: make(map[string]string)}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return "", fmt.Errorf("email exists")
	}
	uid := uuid.New().String()
	f.users[email] = uid
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, uid := range f.users {
		if token == "token-"+uid {
			return uid, nil
		}
	}
	return "", fmt.Errorf("invalid token")
}

func (f *fakeAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, ok := f.users[email]
	if !ok {
		return "", fmt.Errorf("invalid credentials")
	}
	return "token-" + uid, nil
}

func (f *fakeAuthClient) RevokeTokens(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, uid)
	return nil
}
