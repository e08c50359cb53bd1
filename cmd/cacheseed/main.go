/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mikeb26/roundrobin-duelbot/duel"
)

// this program exists just to seed the http cache for signup pages

func main() {
	ctx := context.Background()

	for _, url := range os.Args[1:] {
		players, err := duel.FetchRoster(ctx, url)
		time.Sleep(2 * time.Second) // avoid pegging the origin
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded %v (%v players)\n", url, len(players))
	}
}
