package billing_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mraposo/cobranca-api/internal/domain/entity"
	"github.com/mraposo/cobranca-api/internal/domain/repository"
)

// Stubs em memória dos portos de persistência, para testar os casos de uso
// sem banco.

type stubCustomerRepo struct {
	seq       int64
	customers map[int64]*entity.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[int64]*entity.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.seq++
	c.ID = r.seq
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) ListAll(_ context.Context) ([]entity.Customer, error) {
	return r.collect(func(*entity.Customer) bool { return true }), nil
}

func (r *stubCustomerRepo) ListByStatus(_ context.Context, status string) ([]entity.Customer, error) {
	return r.collect(func(c *entity.Customer) bool { return c.Status == status }), nil
}

func (r *stubCustomerRepo) SearchByNameOrEmail(_ context.Context, q string) ([]entity.Customer, error) {
	q = strings.ToLower(q)
	return r.collect(func(c *entity.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q)
	}), nil
}

func (r *stubCustomerRepo) collect(keep func(*entity.Customer) bool) []entity.Customer {
	var list []entity.Customer
	for _, c := range r.customers {
		if keep(c) {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *stubCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if c, ok := r.customers[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *stubCustomerRepo) EmailInUse(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, c := range r.customers {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCustomerRepo) CPFInUse(_ context.Context, cpf string, excludeID int64) (bool, error) {
	for _, c := range r.customers {
		if c.CPF == cpf && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type stubChargeRepo struct {
	seq       int64
	charges   map[int64]*entity.Charge
	customers *stubCustomerRepo
}

func newStubChargeRepo(customers *stubCustomerRepo) *stubChargeRepo {
	return &stubChargeRepo{charges: make(map[int64]*entity.Charge), customers: customers}
}

func (r *stubChargeRepo) Create(_ context.Context, c *entity.Charge) error {
	r.seq++
	c.ID = r.seq
	clone := *c
	r.charges[c.ID] = &clone
	return nil
}

func (r *stubChargeRepo) FindByID(_ context.Context, id int64) (*entity.Charge, error) {
	c, ok := r.charges[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *stubChargeRepo) FindDetailByID(ctx context.Context, id int64) (*repository.ChargeWithCustomer, error) {
	c, ok := r.charges[id]
	if !ok {
		return nil, nil
	}
	row := r.join(*c)
	return &row, nil
}

func (r *stubChargeRepo) ListAll(_ context.Context) ([]repository.ChargeWithCustomer, error) {
	return r.collect(func(*entity.Charge) bool { return true }), nil
}

func (r *stubChargeRepo) ListByCustomer(_ context.Context, customerID int64) ([]repository.ChargeWithCustomer, error) {
	return r.collect(func(c *entity.Charge) bool { return c.CustomerID == customerID }), nil
}

func (r *stubChargeRepo) ListByStatus(_ context.Context, status string) ([]repository.ChargeWithCustomer, error) {
	return r.collect(func(c *entity.Charge) bool { return c.Status == status }), nil
}

func (r *stubChargeRepo) SumByStatus(_ context.Context, status string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, c := range r.charges {
		if c.Status == status {
			sum = sum.Add(c.Amount)
		}
	}
	return sum, nil
}

func (r *stubChargeRepo) SearchByCustomerName(_ context.Context, q string) ([]repository.ChargeWithCustomer, error) {
	q = strings.ToLower(q)
	rows := r.collect(func(*entity.Charge) bool { return true })
	var matched []repository.ChargeWithCustomer
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.CustomerName), q) {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (r *stubChargeRepo) collect(keep func(*entity.Charge) bool) []repository.ChargeWithCustomer {
	var list []repository.ChargeWithCustomer
	for _, c := range r.charges {
		if keep(c) {
			list = append(list, r.join(*c))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (r *stubChargeRepo) join(c entity.Charge) repository.ChargeWithCustomer {
	row := repository.ChargeWithCustomer{Charge: c}
	if cust, ok := r.customers.customers[c.CustomerID]; ok {
		row.CustomerName = cust.Name
	}
	return row
}

func (r *stubChargeRepo) Update(_ context.Context, c *entity.Charge) error {
	clone := *c
	r.charges[c.ID] = &clone
	return nil
}

func (r *stubChargeRepo) Delete(_ context.Context, id int64) error {
	delete(r.charges, id)
	return nil
}
