package lib

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

var bedrockClient *bedrockruntime.Client
var bedrockClientLock sync.Mutex

func BedrockClient() *bedrockruntime.Client {
	bedrockClientLock.Lock()
	defer bedrockClientLock.Unlock()
	if bedrockClient == nil {
		bedrockClient = bedrockruntime.NewFromConfig(*Session())
	}
	return bedrockClient
}
