/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "roundrobin-duelbot/0.3.1 (+https://github.com/mikeb26/roundrobin-duelbot)"
	WebCacheBucket = "bopmatic-roundrobin-duelbot-prod-webcache"
)
