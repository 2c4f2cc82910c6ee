package config

import (
	"testing"
	"time"

	"github.com/cactivenetwork/cactive-hypixel-api/pkg/cactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_SetDefaults_Validate(t *testing.T) {
	t.Parallel()

	var config Config
	config.SetDefaults()

	err := config.Validate()

	require.NoError(t, err)
	assert.Equal(t, cactive.DefaultBaseURL, config.API.URL)
	assert.True(t, *config.API.Cache)
	assert.Equal(t, cactive.DefaultRatePerMinute, *config.API.RatePerMinute)
	assert.Equal(t, cactive.DefaultRateBurst, *config.API.RateBurst)
	assert.Equal(t, 10*time.Minute, config.Watch.Period)
	assert.Equal(t, ":8000", config.Server.ListeningAddress)
	assert.Equal(t, 5*time.Minute, *config.Server.CacheMaxAge)
	assert.Equal(t, time.Duration(0), *config.Backup.Period)
	assert.Equal(t, "./data", config.Backup.Directory)
}

func Test_Server_Validate(t *testing.T) {
	t.Parallel()

	negative := -time.Second
	testCases := map[string]struct {
		settings   Server
		errWrapped error
		errMessage string
	}{
		"valid": {
			settings: Server{},
		},
		"negative cache max age": {
			settings: Server{
				CacheMaxAge: &negative,
			},
			errWrapped: ErrCacheMaxAgeNegative,
			errMessage: "cache max age cannot be negative: -1s",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			settings := testCase.settings
			settings.setDefaults()

			err := settings.Validate()

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Logger_ToOptions(t *testing.T) {
	t.Parallel()

	var settings Logger
	settings.setDefaults()
	options := settings.ToOptions()
	assert.Len(t, options, 1)

	caller := true
	settings = Logger{
		Caller: &caller,
		Level:  "debug",
	}
	options = settings.ToOptions()
	assert.Len(t, options, 3)
}
