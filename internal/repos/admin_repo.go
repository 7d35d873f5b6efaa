package repos

import (
	"adminpanel/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AdminRepo struct{ DB *sqlx.DB }

func NewAdminRepo(db *sqlx.DB) *AdminRepo { return &AdminRepo{DB: db} }

func (r *AdminRepo) Create(a *domain.Admin) error {
	_, err := r.DB.Exec(`INSERT INTO admins(id,name,email,password_hash,bio,picture)
	                      VALUES(?,?,?,?,?,?)`,
		a.ID, a.Name, a.Email, a.Hash, a.Bio, a.Picture)
	return err
}

func (r *AdminRepo) ByEmail(email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `SELECT id,name,email,password_hash,bio,picture,
	                            created_at,COALESCE(updated_at,'') AS updated_at
	                       FROM admins WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) ByID(id string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `SELECT id,name,email,password_hash,bio,picture,
	                            created_at,COALESCE(updated_at,'') AS updated_at
	                       FROM admins WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) EmailTaken(email string) (bool, error) {
	var n int
	err := r.DB.Get(&n, `SELECT COUNT(*) FROM admins WHERE LOWER(email)=LOWER(?)`, email)
	return n > 0, err
}

func (r *AdminRepo) Update(a *domain.Admin) error {
	_, err := r.DB.Exec(`UPDATE admins SET name=?,bio=?,picture=?,updated_at=CURRENT_TIMESTAMP
	                      WHERE id=?`, a.Name, a.Bio, a.Picture, a.ID)
	return err
}

func (r *AdminRepo) BindSession(sid, adminID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,admin_id,last_seen)
	                      VALUES(?,?,CURRENT_TIMESTAMP)
	                      ON CONFLICT(id) DO UPDATE SET admin_id=excluded.admin_id,last_seen=CURRENT_TIMESTAMP`,
		sid, adminID)
	return err
}

func (r *AdminRepo) SessionAdmin(sid string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.DB.Get(&a, `
	  SELECT a.id,a.name,a.email,a.password_hash,a.bio,a.picture,
	         a.created_at,COALESCE(a.updated_at,'') AS updated_at
	    FROM sessions s
	    JOIN admins a ON a.id=s.admin_id
	   WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET admin_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
