package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/Wealthy-grace/house-Property-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	// Save inserts p when its ID is zero (assigning the new id onto p)
	// and fully overwrites the stored row otherwise.
	Save(ctx context.Context, p *models.Property) error

	FindByID(ctx context.Context, id int64) (*models.Property, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]*models.Property, error)

	FindByLocation(ctx context.Context, location models.LocationType) ([]*models.Property, error)
	FindByHouseType(ctx context.Context, houseType models.HouseType) ([]*models.Property, error)
	FindBySurfaceAreaContaining(ctx context.Context, surfaceArea string) ([]*models.Property, error)
	FindByInteriorContaining(ctx context.Context, interior string) ([]*models.Property, error)
	FindByRentLessOrEqual(ctx context.Context, rentAmount decimal.Decimal) ([]*models.Property, error)

	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ExistsByAddress(ctx context.Context, address string) (bool, error)
	ExistsByPostalCode(ctx context.Context, postalCode string) (bool, error)
	ExistsByInterior(ctx context.Context, interior string) (bool, error)
	ExistsBySurfaceArea(ctx context.Context, surfaceArea string) (bool, error)

	SetRented(ctx context.Context, id int64, rented bool) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Save(ctx context.Context, p *models.Property) error {
	if p.ID == 0 {
		return r.db.QueryRow(ctx, `
			INSERT INTO property (
				title, description, quantity, rent_amount, security_deposit,
				address, rental_condition, postal_code, location_type, house_type,
				available_date, bedrooms, interior, surface_area,
				image, image2, image3, image4, is_rented,
				created_at, updated_at
			) VALUES (
				$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,
				NOW(), NOW()
			) RETURNING id
		`,
			p.Title, p.Description, p.Quantity, p.RentAmount, p.SecurityDeposit,
			p.Address, p.RentalCondition, p.PostalCode, string(p.LocationType), string(p.HouseType),
			p.AvailableDate, p.Bedrooms, p.Interior, p.SurfaceArea,
			p.Image, p.Image2, p.Image3, p.Image4, p.IsRented,
		).Scan(&p.ID)
	}

	_, err := r.db.Exec(ctx, `
		UPDATE property SET
			title=$1, description=$2, quantity=$3, rent_amount=$4, security_deposit=$5,
			address=$6, rental_condition=$7, postal_code=$8, location_type=$9, house_type=$10,
			available_date=$11, bedrooms=$12, interior=$13, surface_area=$14,
			image=$15, image2=$16, image3=$17, image4=$18, is_rented=$19,
			updated_at=NOW()
		WHERE id=$20
	`,
		p.Title, p.Description, p.Quantity, p.RentAmount, p.SecurityDeposit,
		p.Address, p.RentalCondition, p.PostalCode, string(p.LocationType), string(p.HouseType),
		p.AvailableDate, p.Bedrooms, p.Interior, p.SurfaceArea,
		p.Image, p.Image2, p.Image3, p.Image4, p.IsRented,
		p.ID,
	)
	return err
}

func (r *propertyRepo) FindByID(ctx context.Context, id int64) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE id=$1)`, id)
}

func (r *propertyRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM property WHERE id=$1`, id)
	return err
}

func (r *propertyRepo) FindAll(ctx context.Context) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" ORDER BY id")
}

func (r *propertyRepo) FindByLocation(ctx context.Context, location models.LocationType) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" WHERE location_type=$1 ORDER BY id", string(location))
}

func (r *propertyRepo) FindByHouseType(ctx context.Context, houseType models.HouseType) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" WHERE house_type=$1 ORDER BY id", string(houseType))
}

func (r *propertyRepo) FindBySurfaceAreaContaining(ctx context.Context, surfaceArea string) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" WHERE surface_area ILIKE '%'||$1||'%' ORDER BY id", surfaceArea)
}

func (r *propertyRepo) FindByInteriorContaining(ctx context.Context, interior string) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" WHERE interior ILIKE '%'||$1||'%' ORDER BY id", interior)
}

func (r *propertyRepo) FindByRentLessOrEqual(ctx context.Context, rentAmount decimal.Decimal) ([]*models.Property, error) {
	return r.list(ctx, baseSelectProperty()+" WHERE rent_amount <= $1 ORDER BY id", rentAmount)
}

func (r *propertyRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE title=$1)`, title)
}

func (r *propertyRepo) ExistsByAddress(ctx context.Context, address string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE address=$1)`, address)
}

func (r *propertyRepo) ExistsByPostalCode(ctx context.Context, postalCode string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE postal_code=$1)`, postalCode)
}

func (r *propertyRepo) ExistsByInterior(ctx context.Context, interior string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE interior=$1)`, interior)
}

func (r *propertyRepo) ExistsBySurfaceArea(ctx context.Context, surfaceArea string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM property WHERE surface_area=$1)`, surfaceArea)
}

func (r *propertyRepo) SetRented(ctx context.Context, id int64, rented bool) error {
	_, err := r.db.Exec(ctx, `UPDATE property SET is_rented=$1, updated_at=NOW() WHERE id=$2`, rented, id)
	return err
}

/* ------------------------------------------------------------------
   helpers
------------------------------------------------------------------ */

func (r *propertyRepo) exists(ctx context.Context, sql string, arg interface{}) (bool, error) {
	var found bool
	if err := r.db.QueryRow(ctx, sql, arg).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *propertyRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectProperty() string {
	return `
        SELECT
            id, title, description, quantity, rent_amount, security_deposit,
            address, rental_condition, postal_code, location_type, house_type,
            available_date, bedrooms, interior, surface_area,
            image, image2, image3, image4, is_rented,
            created_at, updated_at
        FROM property
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	var locationType, houseType string
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Quantity,
		&p.RentAmount,
		&p.SecurityDeposit,
		&p.Address,
		&p.RentalCondition,
		&p.PostalCode,
		&locationType,
		&houseType,
		&p.AvailableDate,
		&p.Bedrooms,
		&p.Interior,
		&p.SurfaceArea,
		&p.Image,
		&p.Image2,
		&p.Image3,
		&p.Image4,
		&p.IsRented,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.LocationType = models.LocationType(locationType)
	p.HouseType = models.HouseType(houseType)
	return &p, nil
}
