package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/greenstall/greenmarket/internal/domain"
)

// TopicCatalogChanged is published on every successful store mutation with
// the operation name and the affected product id.
const TopicCatalogChanged = "catalog.changed"

// Store holds the client-side product list: the full catalog for a customer
// session, the owner-filtered subset for a farmer session.
//
// The list mutates only after the corresponding API call succeeds; a failed
// call leaves it untouched. There is no reconciliation against concurrent
// remote changes between loads.
type Store struct {
	client  *Client
	session *Session
	bus     EventBus.Bus

	mu       sync.RWMutex
	products []domain.Product
}

func NewStore(client *Client, session *Session, bus EventBus.Bus) *Store {
	return &Store{client: client, session: session, bus: bus}
}

// Products returns a snapshot copy of the current list.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Load fetches the catalog from the API and replaces the in-memory list.
// For an active farmer session only that farmer's products are retained,
// in their original relative order.
func (s *Store) Load(ctx context.Context) error {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return err
	}
	if s.session.Role() == RoleFarmer && s.session.Active() {
		products = FilterByOwner(products, s.session.Email())
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.publish("load", "")
	return nil
}

// Add validates the draft, submits it, and appends the stored record (with
// its assigned id) on success. Every field except Location must be filled;
// a draft missing fields is rejected locally and no request is sent. An
// active session supplies the owner email when the draft leaves it blank.
func (s *Store) Add(ctx context.Context, draft domain.Product) error {
	if draft.Email == "" && s.session.Active() {
		draft.Email = s.session.Email()
	}
	if err := ValidateDraft(draft); err != nil {
		return err
	}
	created, err := s.client.CreateProduct(ctx, draft)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	s.publish("add", created.ID)
	return nil
}

// Update patches the product with the given id and replaces the matching
// in-memory entry with the merged record returned by the server.
func (s *Store) Update(ctx context.Context, id string, patch ProductPatch) error {
	updated, err := s.client.UpdateProduct(ctx, id, patch)
	if err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.publish("update", id)
	return nil
}

// Remove deletes the product with the given id and drops it from the list.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()
	s.publish("remove", id)
	return nil
}

// View derives the display list from the current snapshot: name filter
// first, then sort. The boolean is the close-menu signal from Sort.
func (s *Store) View(query string, key SortKey) ([]domain.Product, bool) {
	return View(s.Products(), query, key)
}

func (s *Store) publish(op, id string) {
	if s.bus != nil {
		s.bus.Publish(TopicCatalogChanged, op, id)
	}
}

// draft fields that must be filled before Add submits; Location may stay
// empty.
var requiredDraftFields = []struct {
	name  string
	value func(domain.Product) string
}{
	{"name", func(p domain.Product) string { return p.Name }},
	{"quantity", func(p domain.Product) string { return p.Quantity }},
	{"price", func(p domain.Product) string { return p.Price }},
	{"image", func(p domain.Product) string { return p.Image }},
	{"description", func(p domain.Product) string { return p.Description }},
	{"email", func(p domain.Product) string { return p.Email }},
	{"upi", func(p domain.Product) string { return p.Upi }},
	{"Contact", func(p domain.Product) string { return p.Contact }},
}

// ValidateDraft checks a new-product form for missing required fields.
func ValidateDraft(draft domain.Product) error {
	var missing []string
	for _, f := range requiredDraftFields {
		if strings.TrimSpace(f.value(draft)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
