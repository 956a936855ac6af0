package receipts_test

import (
	"context"
	"sync"
	"time"

	"github.com/recibospro/recibos-api/internal/application/ports"
	"github.com/recibospro/recibos-api/internal/domain/entity"
	"github.com/recibospro/recibos-api/internal/domain/repository"
)

// memStore guarda entidades por valor: lo que devuelve cada fake es una copia,
// igual que una fila leída de la base. Mutar la entidad original después de
// persistir no afecta lo guardado.
type memStore struct {
	mu        sync.Mutex
	users     map[string]entity.User
	companies map[string]entity.Company
	employees map[string]entity.Employee
	receipts  map[string]entity.Receipt
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[string]entity.User),
		companies: make(map[string]entity.Company),
		employees: make(map[string]entity.Employee),
		receipts:  make(map[string]entity.Receipt),
	}
}

func (s *memStore) putUser(u entity.User)         { s.mu.Lock(); s.users[u.ID] = u; s.mu.Unlock() }
func (s *memStore) putCompany(c entity.Company)   { s.mu.Lock(); s.companies[c.ID] = c; s.mu.Unlock() }
func (s *memStore) putEmployee(e entity.Employee) { s.mu.Lock(); s.employees[e.ID] = e; s.mu.Unlock() }

type fakeUserRepo struct{ s *memStore }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.putUser(*u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type fakeCompanyRepo struct{ s *memStore }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.putCompany(*c)
	return nil
}

func (r *fakeCompanyRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.companies[id]; ok && c.UserID == userID {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByCUIT(_ context.Context, cuit string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.companies {
		if c.CUIT == cuit {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.putCompany(*c)
	return nil
}

func (r *fakeCompanyRepo) ListByUser(_ context.Context, userID string) ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Company
	for _, c := range r.s.companies {
		if c.UserID == userID {
			c := c
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r *fakeCompanyRepo) CountByUser(_ context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, c := range r.s.companies {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.companies[id]; ok && c.UserID == userID {
		delete(r.s.companies, id)
	}
	return nil
}

type fakeEmployeeRepo struct{ s *memStore }

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.putEmployee(*e)
	return nil
}

func (r *fakeEmployeeRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e, ok := r.s.employees[id]; ok && e.UserID == userID {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) ListByUser(_ context.Context, userID, companyID string, limit, offset int) ([]*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Employee
	for _, e := range r.s.employees {
		if e.UserID == userID && (companyID == "" || e.CompanyID == companyID) {
			e := e
			list = append(list, &e)
		}
	}
	return list, nil
}

func (r *fakeEmployeeRepo) CountByUser(_ context.Context, userID, companyID string) (int, error) {
	list, _ := r.ListByUser(context.Background(), userID, companyID, 0, 0)
	return len(list), nil
}

type fakeReceiptRepo struct{ s *memStore }

var _ repository.ReceiptRepository = (*fakeReceiptRepo)(nil)

func (r *fakeReceiptRepo) Create(_ context.Context, rec *entity.Receipt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.receipts[rec.ID] = *rec
	return nil
}

func (r *fakeReceiptRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rec, ok := r.s.receipts[id]; ok && rec.UserID == userID {
		return &rec, nil
	}
	return nil, nil
}

func (r *fakeReceiptRepo) ListByUser(_ context.Context, userID string, filter repository.ReceiptFilter) ([]*entity.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Receipt
	for _, rec := range r.s.receipts {
		if rec.UserID != userID {
			continue
		}
		if filter.CompanyID != "" && rec.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Mes != 0 && rec.Periodo.Mes != filter.Mes {
			continue
		}
		if filter.Anio != 0 && rec.Periodo.Anio != filter.Anio {
			continue
		}
		rec := rec
		list = append(list, &rec)
	}
	return list, nil
}

func (r *fakeReceiptRepo) CountByUserInRange(_ context.Context, userID string, desde, hasta time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, rec := range r.s.receipts {
		if rec.UserID == userID && !rec.CreatedAt.Before(desde) && rec.CreatedAt.Before(hasta) {
			count++
		}
	}
	return count, nil
}

// memTxRunner serializa por tenant con un mutex en memoria: mismo contrato
// que el advisory lock de PostgreSQL, sin base de por medio.
type memTxRunner struct {
	s  *memStore
	mu sync.Mutex
	tn map[string]*sync.Mutex
}

var _ ports.TenantTxRunner = (*memTxRunner)(nil)

func newMemTxRunner(s *memStore) *memTxRunner {
	return &memTxRunner{s: s, tn: make(map[string]*sync.Mutex)}
}

func (r *memTxRunner) RunTenant(_ context.Context, tenantID string, fn func(repos ports.TxRepos) error) error {
	r.mu.Lock()
	lock, ok := r.tn[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		r.tn[tenantID] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ports.TxRepos{
		Users:     &fakeUserRepo{s: r.s},
		Companies: &fakeCompanyRepo{s: r.s},
		Employees: &fakeEmployeeRepo{s: r.s},
		Receipts:  &fakeReceiptRepo{s: r.s},
	})
}
