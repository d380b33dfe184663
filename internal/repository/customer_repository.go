package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/commerce-api/internal/domain"
)

type customerRepository struct {
	db DB
}

// NewCustomerRepository returns a Postgres-backed customer store.
func NewCustomerRepository(db DB) Crud[domain.Customer] {
	return &customerRepository{db: db}
}

func (r *customerRepository) Insert(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (customer_id, company_name, contact_name, contact_title,
            address, city, region, postal_code, country, phone, fax)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.CompanyName,
		customer.ContactName,
		customer.ContactTitle,
		customer.Address,
		customer.City,
		customer.Region,
		customer.PostalCode,
		customer.Country,
		customer.Phone,
		customer.Fax,
	)
	return err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET company_name=$1, contact_name=$2, contact_title=$3,
            address=$4, city=$5, region=$6, postal_code=$7, country=$8, phone=$9, fax=$10
        WHERE customer_id=$11`

	cmd, err := r.db.Exec(ctx, query,
		customer.CompanyName,
		customer.ContactName,
		customer.ContactTitle,
		customer.Address,
		customer.City,
		customer.Region,
		customer.PostalCode,
		customer.Country,
		customer.Phone,
		customer.Fax,
		customer.CustomerID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM customers WHERE customer_id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*domain.Customer, error) {
	const query = `
        SELECT customer_id, company_name, contact_name, contact_title,
            address, city, region, postal_code, country, phone, fax
        FROM customers WHERE customer_id=$1`

	var customer domain.Customer
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.CustomerID,
		&customer.CompanyName,
		&customer.ContactName,
		&customer.ContactTitle,
		&customer.Address,
		&customer.City,
		&customer.Region,
		&customer.PostalCode,
		&customer.Country,
		&customer.Phone,
		&customer.Fax,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	const query = `
        SELECT customer_id, company_name, contact_name, contact_title,
            address, city, region, postal_code, country, phone, fax
        FROM customers ORDER BY customer_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.CustomerID,
			&customer.CompanyName,
			&customer.ContactName,
			&customer.ContactTitle,
			&customer.Address,
			&customer.City,
			&customer.Region,
			&customer.PostalCode,
			&customer.Country,
			&customer.Phone,
			&customer.Fax,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
