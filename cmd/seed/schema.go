package main

// schema is the full database schema. Seeding always starts from a clean
// slate, so every table is dropped first.
const schema = `
DROP TABLE IF EXISTS transactions CASCADE;
DROP TABLE IF EXISTS damage_assessments CASCADE;
DROP TABLE IF EXISTS rental_extensions CASCADE;
DROP TABLE IF EXISTS rental_items CASCADE;
DROP TABLE IF EXISTS rentals CASCADE;
DROP TABLE IF EXISTS gadgets CASCADE;
DROP TABLE IF EXISTS gadget_types CASCADE;
DROP TABLE IF EXISTS students CASCADE;
DROP TABLE IF EXISTS admins CASCADE;

CREATE TABLE admins (
    id            SERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_on    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE students (
    id             SERIAL PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL UNIQUE,
    phone_number   TEXT NOT NULL DEFAULT '',
    major          TEXT NOT NULL DEFAULT '',
    year           INT NOT NULL DEFAULT 1,
    account_status TEXT NOT NULL DEFAULT 'Pending'
        CHECK (account_status IN ('Active', 'Pending', 'Suspended')),
    created_on     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_on     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE gadget_types (
    id        SERIAL PRIMARY KEY,
    type_name TEXT NOT NULL UNIQUE
);

CREATE TABLE gadgets (
    id                  SERIAL PRIMARY KEY,
    serial_number       TEXT NOT NULL UNIQUE,
    gadget_name         TEXT NOT NULL,
    type_id             INT NOT NULL REFERENCES gadget_types(id),
    description         TEXT NOT NULL DEFAULT '',
    price_per_day_cents INT NOT NULL DEFAULT 0,
    status              TEXT NOT NULL DEFAULT 'Available'
        CHECK (status IN ('Available', 'Reserved', 'In Use', 'In Repair', 'Lost')),
    created_on          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE rentals (
    id            SERIAL PRIMARY KEY,
    student_id    INT NOT NULL REFERENCES students(id),
    rental_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    due_date      TIMESTAMPTZ NOT NULL,
    rental_status TEXT NOT NULL DEFAULT 'Pending'
        CHECK (rental_status IN ('Pending', 'Approved', 'Rejected', 'Ongoing', 'Overdue', 'Completed', 'Lost')),
    pickup_date   TIMESTAMPTZ,
    return_date   TIMESTAMPTZ,
    created_on    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_on    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE rental_items (
    id        SERIAL PRIMARY KEY,
    rental_id INT NOT NULL REFERENCES rentals(id) ON DELETE CASCADE,
    gadget_id INT NOT NULL REFERENCES gadgets(id),
    quantity  INT NOT NULL DEFAULT 1
);

CREATE TABLE rental_extensions (
    id           SERIAL PRIMARY KEY,
    rental_id    INT NOT NULL REFERENCES rentals(id) ON DELETE CASCADE,
    new_due_date TIMESTAMPTZ NOT NULL,
    status       TEXT NOT NULL DEFAULT 'Pending'
        CHECK (status IN ('Pending', 'Approved', 'Rejected')),
    request_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE damage_assessments (
    id            SERIAL PRIMARY KEY,
    rental_id     INT NOT NULL REFERENCES rentals(id) ON DELETE CASCADE,
    initial_notes TEXT NOT NULL DEFAULT '',
    final_notes   TEXT NOT NULL DEFAULT '',
    fine_cents    INT,
    date_flagged  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    status        TEXT NOT NULL DEFAULT 'Pending'
        CHECK (status IN ('Pending', 'Resolved'))
);

CREATE TABLE transactions (
    id               SERIAL PRIMARY KEY,
    student_id       INT NOT NULL REFERENCES students(id),
    rental_id        INT REFERENCES rentals(id),
    transaction_type TEXT NOT NULL
        CHECK (transaction_type IN ('Rental Payment', 'Extension Fee', 'Damage Fine', 'Lost Fine', 'Overdue Fine')),
    amount_cents     INT NOT NULL,
    status           TEXT NOT NULL DEFAULT 'Unpaid'
        CHECK (status IN ('Unpaid', 'Paid')),
    transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX idx_rentals_status ON rentals(rental_status);
CREATE INDEX idx_rentals_student ON rentals(student_id);
CREATE INDEX idx_rental_items_gadget ON rental_items(gadget_id);
CREATE INDEX idx_transactions_rental ON transactions(rental_id);
CREATE INDEX idx_transactions_student ON transactions(student_id);
`
