package services

import (
	"collegegraph/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	CollegeService CollegeService
	StudentService StudentService
}

// NewServices initializes all services on top of the given repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CollegeService: NewCollegeService(repos.CollegeRepository, repos.StudentRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.CollegeRepository),
	}
}
