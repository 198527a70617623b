package validation

import "github.com/ahmetcoskunkizilkaya/workforce-backend/internal/dto"

func (e *Engine) AssignJob(req dto.AssignJobRequest) (dto.AssignJobRequest, error) {
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}

func (e *Engine) AssignJobMany(req dto.AssignJobManyRequest) (dto.AssignJobManyRequest, error) {
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}

func (e *Engine) AssignCustomer(req dto.AssignCustomerRequest) (dto.AssignCustomerRequest, error) {
	r := newReport()
	e.structural(req, r)
	return req, r.err()
}
