package password

import "github.com/alexedwards/argon2id"

// Hasher 把密码散列抽象出来，生产环境用 argon2id ，测试里可以换成快速实现
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) (bool, error)
}

type Argon2id struct{}

func (Argon2id) Hash(plaintext string) (string, error) {
	return argon2id.CreateHash(plaintext, argon2id.DefaultParams)
}

func (Argon2id) Verify(plaintext string, digest string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plaintext, digest)
}
