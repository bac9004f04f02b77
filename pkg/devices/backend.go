package devices

import (
	"database/sql"
)

type Device struct {
	ID    int
	Token string
}

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) AddDeviceForViewer(viewer int, token string) error {
	stmt, err := b.db.Prepare("INSERT INTO devices (token, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(token, viewer)
	return err
}

func (b *Backend) GetDevicesForViewer(viewer int) ([]Device, error) {
	stmt, err := b.db.Prepare("SELECT user_id, token FROM devices WHERE user_id = $1;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(viewer)
	if err != nil {
		return nil, err
	}

	result := make([]Device, 0)

	for rows.Next() {
		device := Device{}

		err := rows.Scan(&device.ID, &device.Token)
		if err != nil {
			return nil, err
		}

		result = append(result, device)
	}

	return result, nil
}

func (b *Backend) RemoveDevice(token string) error {
	stmt, err := b.db.Prepare("DELETE FROM devices WHERE token = $1;")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(token)
	return err
}
