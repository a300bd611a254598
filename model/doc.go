// Package model defines the provider-neutral chat abstraction used by the
// engine: a Request of messages and tool specs in, a Reply of text and/or
// proposed tool calls out. Vendor adapters live in the anthropic and openai
// subpackages; MockModel scripts deterministic replies for tests.
package model
