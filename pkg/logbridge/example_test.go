/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logbridge

import (
	"fmt"
	"os"

	"github.com/securekey/fabric-logbridge/pkg/core/config"
	"github.com/securekey/fabric-logbridge/pkg/core/logging/api"
)

func ExampleNew() {

	lb, err := New(WithConfig(config.FromRaw([]byte(`
logging:
  backend: gokit
  level: debug
`), "yaml")), WithOutput(os.Stderr))
	if err != nil {
		fmt.Printf("failed to create log bridge: %s\n", err)
		return
	}

	logger, err := lb.Create("example")
	if err != nil {
		fmt.Printf("failed to create logger: %s\n", err)
		return
	}

	enabled, err := logger.IsEnabled(api.START)
	if err != nil {
		fmt.Printf("failed IsEnabled: %s\n", err)
		return
	}

	fmt.Println("start events enabled:", enabled)

	// Output: start events enabled: true
}
