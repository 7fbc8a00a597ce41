package models

import "time"

// Follow links a learner to a teacher whose active quizzes show up on the learner's dashboard.
type Follow struct {
	FollowerID string    `json:"followerId" gorm:"type:varchar(36);primaryKey"`
	TeacherID  string    `json:"teacherId" gorm:"type:varchar(36);primaryKey"`
	CreatedAt  time.Time `json:"createdAt"`
}
