package todo

import "time"

// Todo - единственная сущность сервиса. Меняется только Completed.
type Todo struct {
	ID        int64     `json:"id" db:"id" example:"1" doc:"Идентификатор, назначается сервером"`
	Title     string    `json:"title" db:"title" example:"buy milk" doc:"Название задачи"`
	Completed bool      `json:"completed" db:"completed" doc:"Признак выполнения"`
	CreatedAt time.Time `json:"created_at" db:"created_at" doc:"Время создания, ключ сортировки"`
}

// Health - фиксированный ответ проверки живости
type Health struct {
	Status  string `json:"status" example:"healthy" doc:"Health status of the service"`
	Service string `json:"service" example:"demo-backend" doc:"Service name"`
}
