package rabbitmq

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetReminderQueues возвращает очереди напоминаний календаря.
func GetReminderQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notification.reminder", RoutingKey: "reminder"},
	}
}
