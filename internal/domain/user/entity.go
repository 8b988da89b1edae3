package user

// User is an administrator allowed to operate the API.
type User struct {
	id           int64
	username     Username
	passwordHash string
}

func NewUser(id int64, username, passwordHash string) (*User, error) {
	name, err := NewUsername(username)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           id,
		username:     name,
		passwordHash: passwordHash,
	}, nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
