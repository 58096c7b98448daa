package vos

import (
	"testing"

	"github.com/josephlewis42/jartos/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticAuthenticator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewStaticAuthenticator(UserList{
		{Username: "jonel", Passwords: []string{"jonel123"}},
		{Username: "admin", Passwords: []string{"old", string(hash)}},
	})

	cases := []struct {
		user, pass string
		want       bool
	}{
		{"jonel", "jonel123", true},
		{"jonel", "JONEL123", false},
		{"jonel", "", false},
		{"Jonel", "jonel123", false},
		{"admin", "old", true},
		{"admin", "s3cret", true},
		{"admin", string(hash), false},
		{"nobody", "jonel123", false},
	}

	for _, tc := range cases {
		t.Run(tc.user+"/"+tc.pass, func(t *testing.T) {
			assert.Equal(t, tc.want, auth.CheckCredentials(tc.user, tc.pass))
		})
	}
}

func TestUserList_GetPasswords(t *testing.T) {
	ul := UserList([]config.User{{Username: "a", Passwords: []string{"1", "2"}}})

	assert.Equal(t, []string{"1", "2"}, ul.GetPasswords("a"))
	assert.Nil(t, ul.GetPasswords("b"))
}
