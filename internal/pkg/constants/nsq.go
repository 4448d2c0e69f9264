package constants

// NSQ topics and channels
const (
	TopicTransactionEvents = "ledger.transaction"
	ChannelWebhookNotifier = "webhook-notifier"
)
