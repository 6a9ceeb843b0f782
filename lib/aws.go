package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

var sess *aws.Config
var sessLock sync.Mutex

// Session loads the default credential chain once per process. Lambdas
// build their clients from it at cold start and reuse them while warm.
func Session() *aws.Config {
	sessLock.Lock()
	defer sessLock.Unlock()
	if sess == nil {
		cfg, err := config.LoadDefaultConfig(context.Background())
		panic1(err)
		sess = &cfg
	}
	return sess
}

func Region() string {
	return Session().Region
}

func panic1(err error) {
	if err != nil {
		panic(err)
	}
}
