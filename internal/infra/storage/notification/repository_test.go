package notification_test

import (
	notificationStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/notification"
	"github.com/campusbook/CB-ReservationService/internal/service/notifications"
)

// Репозиторий должен удовлетворять контракту сервиса уведомлений
var _ notifications.NotificationRepository = (*notificationStorage.Repository)(nil)
