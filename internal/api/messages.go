package api

// User-facing messages. Clients display them verbatim.
const (
	msgMissingFields  = "يرجى توفير جميع البيانات المطلوبة"
	msgMissingUserID  = "يجب تقديم معرف المستخدم"
	msgInvalidPayload = "البيانات المرسلة غير صالحة"
	msgFetched        = "تم جلب المعلومات بنجاح"

	msgUserNotFound        = "المستخدم غير موجود"
	msgCompanyNotFound     = "الشركة غير موجودة"
	msgLocationNotFound    = "الموقف غير موجود"
	msgSpotNotFound        = "الموقف غير موجود"
	msgReservationNotFound = "الحجز غير موجود"

	msgNoUsers     = "لا توجد مستخدمين متاحين"
	msgNoCompanies = "لا توجد شركات متاحة"
	msgNoLocations = "لا توجد بيانات للمواقف"

	msgSignedUp           = "تم إنشاء حساب بنجاح"
	msgCompanyCreated     = "تمت إضافة شركة بنجاح"
	msgCompanyUpdated     = "تم التحديث بنجاح"
	msgCompanyDeleted     = "تم الحذف بنجاح"
	msgSubscribed         = "تم الاشتراك بنجاح"
	msgLocationCreated    = "تم إنشاء مواقف جديدة بنجاح"
	msgLocationUpdated    = "تم تحديث بيانات الموقف بنجاح"
	msgLocationDeleted    = "تم حذف بيانات الموقف بنجاح"
	msgSpotCreated        = "تم إنشاء موقف بنجاح"
	msgSpotUpdated        = "تم تحديث الكلمة بنجاح"
	msgSpotDeleted        = "تم حذف البيانات بنجاح"
	msgReserved           = "تم الحجز بنجاح"
	msgReservationUpdated = "تم تحديث الحجز بنجاح"
	msgReservationDeleted = "تم إلغاء الحجز بنجاح"

	errSignUp            = "حدثت مشكلة أثناء إنشاء الحساب"
	errFetch             = "حدثت مشكلة أثناء جلب البيانات"
	errQueryCompany      = "حدثت مشكلة أثناء الاستعلام عن البيانات"
	errCreateCompany     = "حدثت مشكلة أثناء إضافة الشركة"
	errUpdateCompany     = "حدثت مشكلة أثناء التحديث"
	errDeleteCompany     = "حدثت مشكلة أثناء الحذف"
	errSubscribe         = "حدثت مشكلة أثناء الاشتراك"
	errCreateLocation    = "حدثت مشكلة أثناء إنشاء المواقف"
	errFetchLocations    = "حدثت مشكلة أثناء استرداد بيانات المواقف"
	errFetchLocation     = "حدثت مشكلة أثناء استرداد بيانات الموقف"
	errUpdateLocation    = "حدثت مشكلة أثناء تحديث بيانات الموقف"
	errDeleteLocation    = "حدثت مشكلة أثناء حذف بيانات الموقف"
	errCreateSpot        = "حدثت مشكلة أثناء إنشاء الموقف"
	errFetchSpots        = "حدثت مشكلة أثناء جلب المعلومات"
	errUpdateSpot        = "حدثت مشكلة أثناء تحديث الكلمة"
	errDeleteSpot        = "حدثت مشكلة أثناء عملية الحذف"
	errReserve           = "حدثت مشكلة أثناء عملية الحجز"
	errUpdateReservation = "حدثت مشكلة أثناء تحديث الحجز"
	errCancelReservation = "حدثت مشكلة أثناء إلغاء الحجز"
	errPayment           = "حدثت مشكلة أثناء إنشاء عملية الدفع"
)
