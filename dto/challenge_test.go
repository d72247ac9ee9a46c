// file: dto/challenge_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeReqValid(t *testing.T) {
	req := CreateChallengeReq{
		Name:        "  Basic Crypto ",
		Description: "Decode Base64",
		Flag:        "flag{Base64_Is_Fun!}",
		Points:      "100",
	}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, "Basic Crypto", req.Name)
	assert.Equal(t, uint(100), req.PointsValue())
}

func TestCreateChallengeReqMissingFields(t *testing.T) {
	cases := []CreateChallengeReq{
		{Description: "d", Flag: "f", Points: "10"},
		{Name: "n", Flag: "f", Points: "10"},
		{Name: "n", Description: "d", Points: "10"},
		{Name: "n", Description: "d", Flag: "f"},
		{Name: "   ", Description: "d", Flag: "f", Points: "10"},
	}
	for _, req := range cases {
		req.Normalize()
		assert.Error(t, req.Validate())
	}
}

func TestCreateChallengeReqBadPoints(t *testing.T) {
	for _, pts := range []string{"abc", "10.5", "-5", "0"} {
		req := CreateChallengeReq{Name: "n", Description: "d", Flag: "f", Points: pts}
		req.Normalize()
		assert.Error(t, req.Validate(), "points=%q", pts)
	}
}

func TestRegisterReqValidation(t *testing.T) {
	req := RegisterReq{Username: " alice ", Password: "pw1"}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, "alice", req.Username)

	empty := RegisterReq{Username: "alice"}
	empty.Normalize()
	assert.Error(t, empty.Validate())
}
