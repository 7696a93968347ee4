package repositories

import "context"

// The five unique indexes back the create-time uniqueness rules at the
// store level, so two concurrent creates that both pass the service's
// pre-check cannot both insert.
const propertySchema = `
CREATE TABLE IF NOT EXISTS property (
    id               BIGSERIAL PRIMARY KEY,
    title            VARCHAR(200)  NOT NULL,
    description      TEXT          NOT NULL,
    quantity         INTEGER       NOT NULL,
    rent_amount      NUMERIC(10,2) NOT NULL,
    security_deposit NUMERIC(10,2) NOT NULL,
    address          VARCHAR(255)  NOT NULL,
    rental_condition TEXT          NOT NULL,
    postal_code      VARCHAR(10)   NOT NULL,
    location_type    VARCHAR(50)   NOT NULL,
    house_type       VARCHAR(50)   NOT NULL,
    available_date   VARCHAR(100)  NOT NULL,
    bedrooms         INTEGER       NOT NULL DEFAULT 1,
    interior         TEXT          NOT NULL,
    surface_area     VARCHAR(100)  NOT NULL,
    image            VARCHAR(1000) NOT NULL,
    image2           VARCHAR(1000) NOT NULL,
    image3           VARCHAR(1000) NOT NULL,
    image4           VARCHAR(1000) NOT NULL,
    is_rented        BOOLEAN       NOT NULL DEFAULT FALSE,
    created_at       TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
    updated_at       TIMESTAMPTZ   NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_property_title        ON property (title);
CREATE UNIQUE INDEX IF NOT EXISTS uq_property_postal_code  ON property (postal_code);
CREATE UNIQUE INDEX IF NOT EXISTS uq_property_address      ON property (address);
CREATE UNIQUE INDEX IF NOT EXISTS uq_property_interior     ON property (interior);
CREATE UNIQUE INDEX IF NOT EXISTS uq_property_surface_area ON property (surface_area);
`

// Migrate applies the property schema. It is idempotent and runs on every
// start.
func Migrate(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, propertySchema)
	return err
}
