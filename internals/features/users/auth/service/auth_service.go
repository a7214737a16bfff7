// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/configs"
	pointRepo "ecolearn_backend/internals/features/rewards/points/repository"
	pointService "ecolearn_backend/internals/features/rewards/points/service"
	authDTO "ecolearn_backend/internals/features/users/auth/dto"
	authHelper "ecolearn_backend/internals/features/users/auth/helper"
	userModel "ecolearn_backend/internals/features/users/user/model"
	helpers "ecolearn_backend/internals/helpers"
)

var validate = validator.New()

/* =============================================================================
   REGISTER
============================================================================= */

// Register creates the account plus its role-specific profile in one
// transaction. Students and teachers get their institution resolved or
// created on the fly; NGO/Government accounts get an organization record.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := validate.Struct(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	role := userModel.UserRole(req.Role)
	if !role.Valid() {
		return helpers.JsonAppError(c, helpers.NewValidationError("role", "unknown role"))
	}
	if req.Password != req.ConfirmPassword {
		return helpers.JsonAppError(c, helpers.ErrPasswordMismatch)
	}
	if err := validateRoleBlock(&req, role); err != nil {
		return helpers.JsonAppError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := req.ToUserModel(hashed)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if helpers.IsUniqueViolation(err) {
				return helpers.ErrDuplicateUsername
			}
			return err
		}
		switch {
		case role.IsStudent():
			return createStudentProfile(tx, user, req.Student)
		case role.IsTeacher():
			return createTeacherProfile(tx, user, req.Teacher)
		default:
			return createOrganization(tx, user, role, req.Organization)
		}
	})
	if err != nil {
		if appErr, ok := err.(*helpers.AppError); ok {
			return helpers.JsonAppError(c, appErr)
		}
		log.Printf("[register] failed for %q: %v", req.UserName, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helpers.JsonCreated(c, "Registration successful", authDTO.NewUserResponse(user))
}

func validateRoleBlock(req *authDTO.RegisterRequest, role userModel.UserRole) error {
	switch {
	case role.IsStudent():
		if req.Student == nil {
			return helpers.NewValidationError("student", "student profile is required for student roles")
		}
		if role == userModel.RoleSchoolStudent && req.Student.Grade == nil {
			return helpers.NewValidationError("student.grade", "grade is required for school students")
		}
		if role == userModel.RoleCollegeStudent && req.Student.CurrentYear == nil {
			return helpers.NewValidationError("student.current_year", "current year is required for college students")
		}
	case role.IsTeacher():
		if req.Teacher == nil {
			return helpers.NewValidationError("teacher", "teacher profile is required for teacher roles")
		}
	default:
		if req.Organization == nil {
			return helpers.NewValidationError("organization", "organization details are required for NGO/Government roles")
		}
	}
	return nil
}

// resolveInstitution reuses an existing institution only on an exact
// name+city+state+type match; anything else becomes a new row.
func resolveInstitution(tx *gorm.DB, name, city, state string, typ userModel.InstitutionType) (*userModel.InstitutionModel, error) {
	inst := userModel.InstitutionModel{
		InstitutionName:  name,
		InstitutionCity:  city,
		InstitutionState: state,
		InstitutionType:  typ,
	}
	err := tx.Where(&userModel.InstitutionModel{
		InstitutionName:  name,
		InstitutionCity:  city,
		InstitutionState: state,
		InstitutionType:  typ,
	}).FirstOrCreate(&inst).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func institutionTypeForRole(role userModel.UserRole) userModel.InstitutionType {
	if role == userModel.RoleSchoolStudent || role == userModel.RoleSchoolTeacher {
		return userModel.InstitutionSchool
	}
	return userModel.InstitutionCollege
}

func createStudentProfile(tx *gorm.DB, user *userModel.UserModel, blk *authDTO.StudentBlock) error {
	inst, err := resolveInstitution(tx, blk.InstitutionName, blk.InstitutionCity, blk.InstitutionState, institutionTypeForRole(user.Role))
	if err != nil {
		return err
	}
	profile := userModel.StudentProfileModel{
		StudentProfileUserID:        user.ID,
		StudentProfileInstitutionID: inst.InstitutionID,
		StudentProfileEnrollmentNo:  blk.EnrollmentNo,
		StudentProfileGrade:         blk.Grade,
		StudentProfileStream:        blk.Stream,
		StudentProfileCurrentYear:   blk.CurrentYear,
		StudentProfileCourse:        blk.Course,
		StudentProfileFieldOfStudy:  blk.FieldOfStudy,
	}
	if g := userModel.Gender(blk.Gender); g.Valid() {
		profile.StudentProfileGender = g
	}
	return tx.Create(&profile).Error
}

func createTeacherProfile(tx *gorm.DB, user *userModel.UserModel, blk *authDTO.TeacherBlock) error {
	inst, err := resolveInstitution(tx, blk.InstitutionName, blk.InstitutionCity, blk.InstitutionState, institutionTypeForRole(user.Role))
	if err != nil {
		return err
	}
	profile := userModel.TeacherProfileModel{
		TeacherProfileUserID:        user.ID,
		TeacherProfileInstitutionID: inst.InstitutionID,
		TeacherProfileTeacherID:     blk.TeacherID,
		TeacherProfileDesignation:   blk.Designation,
		TeacherProfileDepartment:    blk.Department,
	}
	if g := userModel.Gender(blk.Gender); g.Valid() {
		profile.TeacherProfileGender = g
	}
	return tx.Create(&profile).Error
}

func createOrganization(tx *gorm.DB, user *userModel.UserModel, role userModel.UserRole, blk *authDTO.OrganizationBlock) error {
	orgType := userModel.OrganizationNGO
	if role == userModel.RoleGovernment {
		orgType = userModel.OrganizationGovernment
	}
	org := userModel.OrganizationModel{
		OrganizationUserID:        user.ID,
		OrganizationName:          blk.Name,
		OrganizationType:          orgType,
		OrganizationContactPerson: blk.ContactPerson,
		OrganizationEmail:         blk.Email,
		OrganizationWebsite:       blk.Website,
		OrganizationAddress:       blk.Address,
		OrganizationCity:          blk.City,
		OrganizationState:         blk.State,
	}
	return tx.Create(&org).Error
}

/* =============================================================================
   LOGIN (username/email + password)
============================================================================= */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := findUserByIdentifier(db, req.Identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier or password is incorrect")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account is deactivated. Contact support.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier or password is incorrect")
	}
	if req.Role != "" && req.Role != string(user.Role) {
		return helpers.JsonAppError(c, helpers.NewValidationError("role", "role does not match this account"))
	}

	return completeLogin(db, c, user)
}

func findUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	q := db.Limit(1)
	if strings.Contains(identifier, "@") {
		q = q.Where("email = ?", strings.ToLower(identifier))
	} else {
		q = q.Where("user_name = ?", identifier)
	}
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// completeLogin is the shared tail of the password and Google flows: audit
// the login, fire the daily reward, issue tokens.
func completeLogin(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) error {
	if err := db.Create(&userModel.LoginHistoryModel{
		LoginHistoryUserID: user.ID,
	}).Error; err != nil {
		log.Printf("[login] login history insert failed: %v", err)
	}

	// Daily login reward. Best-effort: a reward failure must never block the
	// login itself.
	var dailyReward *int
	svc := pointService.NewEcoPointService(pointRepo.NewEcoPointRepository(db)).
		WithDailyPoints(configs.DailyLoginPoints)
	award, err := svc.GrantDailyLogin(c.Context(), user.ID, nowUTC())
	if err != nil {
		log.Printf("[login] daily reward grant failed for %s: %v", user.ID, err)
	} else if award != nil {
		dailyReward = &award.EcoPointPoints
	}

	accessToken, err := issueTokens(c, *user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: accessToken,
		User:        authDTO.NewUserResponse(user),
		DailyReward: dailyReward,
	})
}

/* =============================================================================
   LOGIN (Google ID token)
============================================================================= */

// LoginGoogle verifies the Google ID token and logs in the matching local
// account. Signup still happens through Register because the role and its
// profile block cannot be derived from a Google token.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Google token invalid")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "No account for this Google email, please register first")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account is deactivated. Contact support.")
	}

	return completeLogin(db, c, &user)
}

/* =============================================================================
   LOGOUT & PASSWORD CHANGE
============================================================================= */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	clearRefreshCookie(c)
	return helpers.JsonOK(c, "Logged out", nil)
}

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req struct {
		OldPassword     string `json:"old_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.NewPassword != req.ConfirmPassword {
		return helpers.JsonAppError(c, helpers.ErrPasswordMismatch)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.OldPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}

	hashed, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", user.ID).
		Update("password", hashed).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password updated", nil)
}
